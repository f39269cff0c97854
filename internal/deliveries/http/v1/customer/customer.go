package customer

import (
	"fmt"
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/printhaus/go-shop-finance/internal/common/http"
	"github.com/printhaus/go-shop-finance/internal/common/validation"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/services"
)

type customerHandler struct {
	customerSvc services.CustomerService
	ledgerSvc   services.LedgerService
}

// New customer handler will initialize the customers/ resources endpoint
func New(app *echo.Group, customerSvc services.CustomerService, ledgerSvc services.LedgerService) {
	handler := customerHandler{
		customerSvc: customerSvc,
		ledgerSvc:   ledgerSvc,
	}
	api := app.Group("/customers")
	api.POST("", handler.createCustomer)
	api.GET("", handler.listCustomers)
	api.GET("/:id", handler.getCustomer)
	api.PATCH("/:id/credit-ceiling", handler.updateCreditCeiling)
	api.GET("/:id/ledger", handler.getLedger)
	api.GET("/:id/balance-summary", handler.getBalanceSummary)
	api.POST("/:id/credit-check", handler.checkCredit)
}

// createCustomer API create customer
// @Summary Create customer
// @Description Create a customer, optionally with a credit ceiling
// @Tags Customers
// @Accept  json
// @Produce  json
// @Param body body models.CreateCustomerRequest true "body"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 201 {object} models.CustomerOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/customers [post]
func (h *customerHandler) createCustomer(c echo.Context) error {
	req := new(models.CreateCustomerRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidRequestBody))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.customerSvc.Create(c.Request().Context(), *req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToCustomerOut())
}

// listCustomers API list customers
// @Summary List customers
// @Description List customers by name, phone or email
// @Tags Customers
// @Produce  json
// @Param search query string false "search"
// @Param limit query int false "limit"
// @Param offset query int false "offset"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.CustomerOut}
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/customers [get]
func (h *customerHandler) listCustomers(c echo.Context) error {
	req := new(models.ListCustomerRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidRequestBody))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, total, err := h.customerSvc.List(c.Request().Context(), models.CustomerFilter{
		Search:     req.Search,
		Pagination: models.NewPagination(req.Limit, req.Offset),
	})
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	data := make([]models.CustomerOut, 0, len(res))
	for _, v := range res {
		data = append(data, v.ToCustomerOut())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, total)
}

// getCustomer API get customer
// @Summary Get customer
// @Tags Customers
// @Produce  json
// @Param id path string true "customer id"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.CustomerOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/customers/{id} [get]
func (h *customerHandler) getCustomer(c echo.Context) error {
	res, err := h.customerSvc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToCustomerOut())
}

// updateCreditCeiling API update credit ceiling
// @Summary Update credit ceiling
// @Description Set the credit ceiling of a customer. null or 0 turns credit checking off.
// @Tags Customers
// @Accept  json
// @Produce  json
// @Param id path string true "customer id"
// @Param body body models.UpdateCreditCeilingRequest true "body"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.CustomerOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/customers/{id}/credit-ceiling [patch]
func (h *customerHandler) updateCreditCeiling(c echo.Context) error {
	req := new(models.UpdateCreditCeilingRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidRequestBody))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	var ceiling *decimal.Decimal
	if req.CreditCeiling != nil {
		ceiling = &req.CreditCeiling.Decimal
	}

	res, err := h.customerSvc.UpdateCreditCeiling(c.Request().Context(), c.Param("id"), ceiling)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToCustomerOut())
}

// getLedger API get customer ledger
// @Summary Get reconciled ledger
// @Description Every order, payment and adjustment of the customer in chronological order with the running balance.
// @Description Send Accept: text/csv or format=csv to download it as CSV.
// @Tags Customers
// @Produce  json
// @Produce  text/csv
// @Param id path string true "customer id"
// @Param format query string false "csv"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.CustomerLedgerOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/customers/{id}/ledger [get]
func (h *customerHandler) getLedger(c echo.Context) error {
	res, err := h.ledgerSvc.GetLedger(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	if http.WantsCSV(c) {
		return http.CSVSuccessResponse(c, fmt.Sprintf("ledger_%s.csv", res.CustomerID), res.ToCSVRows())
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToCustomerLedgerOut())
}

// getBalanceSummary API get balance summary
// @Summary Get balance summary
// @Tags Customers
// @Produce  json
// @Param id path string true "customer id"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.BalanceSummaryOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/customers/{id}/balance-summary [get]
func (h *customerHandler) getBalanceSummary(c echo.Context) error {
	id := c.Param("id")

	res, err := h.ledgerSvc.GetSummary(c.Request().Context(), id)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToBalanceSummaryOut(id))
}

// checkCredit API check credit limit
// @Summary Check credit limit
// @Description Evaluate whether a prospective order would push the customer above the credit ceiling. Nothing is stored.
// @Tags Customers
// @Accept  json
// @Produce  json
// @Param id path string true "customer id"
// @Param body body models.CreditCheckRequest true "body"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.CreditLimitCheckOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/customers/{id}/credit-check [post]
func (h *customerHandler) checkCredit(c echo.Context) error {
	req := new(models.CreditCheckRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidRequestBody))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.ledgerSvc.CheckCredit(c.Request().Context(), c.Param("id"), req.ProspectiveAmount.Decimal)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToCreditLimitCheckOut())
}
