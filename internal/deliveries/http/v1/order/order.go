package order

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

type orderHandler struct {
	orderSvc services.OrderService
	loc      *time.Location
}

// New order handler will initialize the orders/ resources endpoint
func New(app *echo.Group, orderSvc services.OrderService, m middleware.AppMiddleware, loc *time.Location) {
	handler := orderHandler{orderSvc: orderSvc, loc: loc}
	orders := app.Group("/orders")
	orders.POST("", handler.createOrder, m.CheckIdempotentRequest())
}

// createOrder API create order
// @Summary Create back-office order
// @Description Store an order after running the credit check. The check result is returned with the order.
// @Description Exceeding the credit ceiling only warns unless blocking is switched on.
// @Tags Order
// @Accept  json
// @Produce  json
// @Param 	payload body models.CreateOrderRequest true "A JSON object containing create order payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Idempotency-Key header string true "X-Idempotency-Key"
// @Success 201 {object} models.OrderOut "Response indicates that the order has been stored"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error"
// @Failure 404 {object} http.RestErrorResponseModel "Customer not found"
// @Failure 409 {object} http.RestErrorResponseModel "Order with the same display id already exists"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error or credit limit exceeded"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/orders [post]
func (h *orderHandler) createOrder(c echo.Context) error {
	req := new(models.CreateOrderRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidRequestBody))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	orderDate, err := http.DateOrToday(req.OrderDate, h.loc)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	res, err := h.orderSvc.Create(c.Request().Context(), models.CreateOrderIn{
		CustomerID: req.CustomerID,
		DisplayID:  req.DisplayID,
		TotalValue: req.TotalValue.Decimal,
		OrderDate:  orderDate,
		Source:     models.OrderSourceBackOffice,
	})
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToOrderOut())
}
