package adjustment

import (
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/printhaus/go-shop-finance/internal/common/http"
	"github.com/printhaus/go-shop-finance/internal/common/http/middleware"
	"github.com/printhaus/go-shop-finance/internal/common/validation"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/services"
)

type adjustmentHandler struct {
	adjustmentSvc services.AdjustmentService
	loc           *time.Location
}

// New adjustment handler will initialize the adjustments/ resources endpoint
func New(app *echo.Group, adjustmentSvc services.AdjustmentService, m middleware.AppMiddleware, loc *time.Location) {
	handler := adjustmentHandler{adjustmentSvc: adjustmentSvc, loc: loc}
	adjustments := app.Group("/adjustments")
	adjustments.POST("", handler.createAdjustment, m.CheckIdempotentRequest())
}

// createAdjustment API record manual adjustment
// @Summary Record manual adjustment
// @Description A debit adjustment raises what the customer owes, a credit adjustment lowers it.
// @Description The amount is always positive; type decides the direction.
// @Tags Adjustment
// @Accept  json
// @Produce  json
// @Param 	payload body models.CreateAdjustmentRequest true "A JSON object containing create adjustment payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Idempotency-Key header string true "X-Idempotency-Key"
// @Success 201 {object} models.AdjustmentOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/adjustments [post]
func (h *adjustmentHandler) createAdjustment(c echo.Context) error {
	req := new(models.CreateAdjustmentRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidRequestBody))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	adjustedAt, err := http.DateOrToday(req.AdjustedAt, h.loc)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	res, err := h.adjustmentSvc.Create(c.Request().Context(), models.CreateAdjustmentIn{
		CustomerID: req.CustomerID,
		Amount:     req.Amount.Decimal,
		Type:       models.AdjustmentType(req.Type),
		AdjustedAt: adjustedAt,
		Remarks:    req.Remarks,
	})
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToAdjustmentOut())
}
