package payment

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

type paymentHandler struct {
	paymentSvc services.PaymentService
	loc        *time.Location
}

// New payment handler will initialize the payments/ resources endpoint
func New(app *echo.Group, paymentSvc services.PaymentService, m middleware.AppMiddleware, loc *time.Location) {
	handler := paymentHandler{paymentSvc: paymentSvc, loc: loc}
	payments := app.Group("/payments")
	payments.POST("", handler.createPayment, m.CheckIdempotentRequest())
}

// createPayment API record payment
// @Summary Record payment
// @Description Record a payment received from a customer. paidAt defaults to today.
// @Tags Payment
// @Accept  json
// @Produce  json
// @Param 	payload body models.CreatePaymentRequest true "A JSON object containing create payment payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Idempotency-Key header string true "X-Idempotency-Key"
// @Success 201 {object} models.PaymentOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/payments [post]
func (h *paymentHandler) createPayment(c echo.Context) error {
	req := new(models.CreatePaymentRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidRequestBody))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	paidAt, err := http.DateOrToday(req.PaidAt, h.loc)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	res, err := h.paymentSvc.Create(c.Request().Context(), models.CreatePaymentIn{
		CustomerID: req.CustomerID,
		Amount:     req.Amount.Decimal,
		PaidAt:     paidAt,
		Method:     req.Method,
		Notes:      req.Notes,
		Reference:  req.Reference,
		Source:     models.PaymentSourceBackOffice,
	})
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToPaymentOut())
}
