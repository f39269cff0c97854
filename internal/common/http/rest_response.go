package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/models"
)

const statusError = "error"

type (
	RestErrorResponseModel struct {
		Status  string `json:"status" example:"error"`
		Code    any    `json:"code"`
		Message string `json:"message" example:"customer not found"`
	}

	RestTotalRowResponseModel struct {
		Kind      string `json:"kind" example:"collection"`
		Contents  any    `json:"contents"`
		TotalRows int    `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string `json:"status" example:"error"`
		Message string `json:"message" example:"validation failed"`
		Errors  any    `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in any) error {
	return c.JSON(code, in)
}

// RestSuccessResponseListWithTotalRows renders an empty page as [] rather than null.
func RestSuccessResponseListWithTotalRows[T any](c echo.Context, data []T, totalRows int) error {
	if data == nil {
		data = []T{}
	}
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

// RestErrorResponse renders err under statusCode. An ErrorDetail contributes its
// error map code, an echo.HTTPError its own code and message.
func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  statusError,
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	var detail models.ErrorDetail
	switch {
	case errors.As(err, &detail):
		res.Code = detail.Code
		res.Message = detail.ErrorMessage.Error()
	case errors.As(err, &echoErr):
		res.Code = echoErr.Code
		res.Message = fmt.Sprint(echoErr.Message)
	}

	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, err error) error {
	res := RestErrorValidationResponseModel{
		Status:  statusError,
		Message: common.ErrValidation.Error(),
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		res.Errors = merr.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}
