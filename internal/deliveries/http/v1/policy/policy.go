package policy

import (
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/printhaus/go-shop-finance/internal/common/http"
	"github.com/printhaus/go-shop-finance/internal/common/http/middleware"
	"github.com/printhaus/go-shop-finance/internal/common/validation"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/services"
)

const maxHorizonDays = 366

type policyHandler struct {
	policySvc services.PolicyService
	loc       *time.Location
}

// New policy handler will initialize the policies/ resources endpoint
func New(app *echo.Group, policySvc services.PolicyService, m middleware.AppMiddleware, loc *time.Location) {
	handler := policyHandler{policySvc: policySvc, loc: loc}
	policies := app.Group("/policies")
	policies.POST("", handler.createPolicy, m.CheckIdempotentRequest())
	policies.GET("", handler.listPolicies)
	policies.GET("/upcoming", handler.listUpcoming)
	policies.GET("/:id", handler.getPolicy)
	policies.GET("/:id/due", handler.getDue)
	policies.POST("/:id/mark-paid", handler.markPaid, m.CheckIdempotentRequest())
}

// createPolicy API create policy
// @Summary Create installment policy
// @Description The first due date is one period after the issuance date.
// @Tags Policy
// @Accept  json
// @Produce  json
// @Param 	payload body models.CreatePolicyRequest true "A JSON object containing create policy payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Idempotency-Key header string true "X-Idempotency-Key"
// @Success 201 {object} models.PolicyOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/policies [post]
func (h *policyHandler) createPolicy(c echo.Context) error {
	req := new(models.CreatePolicyRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidRequestBody))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	frequency, err := models.ParseFrequency(req.Frequency)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyFrequencyOneof))
	}

	issuanceDate, err := http.DateOrToday(req.IssuanceDate, h.loc)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	res, err := h.policySvc.Create(c.Request().Context(), models.CreatePolicyIn{
		CustomerID:        req.CustomerID,
		PolicyNumber:      req.PolicyNumber,
		Insurer:           req.Insurer,
		Frequency:         frequency,
		IssuanceDate:      issuanceDate,
		InstallmentAmount: req.InstallmentAmount.Decimal,
	})
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToPolicyOut())
}

// listPolicies API list policies
// @Summary List policies
// @Tags Policy
// @Produce  json
// @Param customerId query string false "customer id"
// @Param status query string false "active, lapsed or cancelled"
// @Param limit query int false "limit"
// @Param offset query int false "offset"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.PolicyOut}
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/policies [get]
func (h *policyHandler) listPolicies(c echo.Context) error {
	req := new(models.ListPolicyRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidRequestBody))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, total, err := h.policySvc.List(c.Request().Context(), models.PolicyFilter{
		CustomerID: req.CustomerID,
		Status:     models.PolicyStatus(req.Status),
		Pagination: models.NewPagination(req.Limit, req.Offset),
	})
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	data := make([]models.PolicyOut, 0, len(res))
	for _, v := range res {
		data = append(data, v.ToPolicyOut())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, total)
}

// listUpcoming API list upcoming installments
// @Summary List upcoming installments
// @Description Active policies whose projected due date falls within horizonDays of referenceDate, soonest first.
// @Tags Policy
// @Produce  json
// @Param referenceDate query string false "yyyy-mm-dd, defaults to today"
// @Param horizonDays query int false "1 to 366"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.PolicyDueOut}
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/policies/upcoming [get]
func (h *policyHandler) listUpcoming(c echo.Context) error {
	ref, err := http.DateOrToday(c.QueryParam("referenceDate"), h.loc)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidReferenceDate))
	}

	horizon := 0
	if raw := c.QueryParam("horizonDays"); raw != "" {
		horizon, err = strconv.Atoi(raw)
		if err != nil || horizon < 1 || horizon > maxHorizonDays {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidHorizonDays))
		}
	}

	res, err := h.policySvc.ListUpcoming(c.Request().Context(), ref, horizon)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	data := make([]models.PolicyDueOut, 0, len(res))
	for _, v := range res {
		data = append(data, v.ToPolicyDueOut())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

// getPolicy API get policy
// @Summary Get policy
// @Tags Policy
// @Produce  json
// @Param id path string true "policy id"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.PolicyOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/policies/{id} [get]
func (h *policyHandler) getPolicy(c echo.Context) error {
	res, err := h.policySvc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToPolicyOut())
}

// getDue API get next due date
// @Summary Project next due date
// @Description The stored anchor is never changed. available is false when the date cannot be determined.
// @Tags Policy
// @Produce  json
// @Param id path string true "policy id"
// @Param referenceDate query string false "yyyy-mm-dd, defaults to today"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.PolicyDueOut
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/policies/{id}/due [get]
func (h *policyHandler) getDue(c echo.Context) error {
	ref, err := http.DateOrToday(c.QueryParam("referenceDate"), h.loc)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, models.GetErrMap(models.ErrKeyInvalidReferenceDate))
	}

	res, err := h.policySvc.GetDue(c.Request().Context(), c.Param("id"), ref)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToPolicyDueOut())
}

// markPaid API mark installment paid
// @Summary Mark installment paid
// @Description Moves the stored due date forward by exactly one period.
// @Tags Policy
// @Produce  json
// @Param id path string true "policy id"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Idempotency-Key header string true "X-Idempotency-Key"
// @Success 200 {object} models.MarkPaidOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/policies/{id}/mark-paid [post]
func (h *policyHandler) markPaid(c echo.Context) error {
	res, err := h.policySvc.MarkPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToMarkPaidOut())
}
