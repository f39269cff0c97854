package http

import (
	"errors"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/models"
)

var errorStatus = []struct {
	err    error
	status int
	key    string
}{
	{common.ErrCustomerNotFound, http.StatusNotFound, models.ErrKeyCustomerNotFound},
	{common.ErrPolicyNotFound, http.StatusNotFound, models.ErrKeyPolicyNotFound},
	{common.ErrDataNotFound, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrNoRows, http.StatusNotFound, models.ErrKeyDataNotFound},
	{common.ErrOrderAlreadyExists, http.StatusConflict, models.ErrKeyOrderAlreadyExists},
	{common.ErrDataExist, http.StatusConflict, models.ErrKeyDataIsExist},
	{common.ErrCreditLimitExceeded, http.StatusUnprocessableEntity, models.ErrKeyCreditLimitExceeded},
	{common.ErrPolicyNotActive, http.StatusUnprocessableEntity, models.ErrKeyPolicyNotActive},
	{common.ErrInvalidFormatDate, http.StatusBadRequest, models.ErrKeyInvalidReferenceDate},
	{common.ErrInvalidAdjustmentType, http.StatusBadRequest, models.ErrKeyTypeOneof},
	{common.ErrInvalidAmount, http.StatusBadRequest, models.ErrKeyAmountDecimalGreaterThan},
	{common.ErrInvalidFrequency, http.StatusBadRequest, models.ErrKeyFrequencyOneof},
}

// HandleServiceError maps a service error onto its status code and error map entry.
// Validation errors are rendered field by field; anything unknown is a 500.
func HandleServiceError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		return RestErrorValidationResponse(c, merr)
	}

	var detail models.ErrorDetail
	if errors.As(err, &detail) {
		return RestErrorResponse(c, detail.HTTPStatus(), detail)
	}

	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return RestErrorResponse(c, e.status, models.GetErrMap(e.key))
		}
	}

	return RestErrorResponse(c, http.StatusInternalServerError, err)
}
