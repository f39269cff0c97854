package order

import (
	"context"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/models"
)

func TestHandlerCreateOrder(t *testing.T) {
	ceiling := decimal.NewFromInt(1000)

	tests := []struct {
		name           string
		body           string
		idempotencyKey string
		doMock         func(h orderTestHelper)
		wantCode       int
		wantRes        string
	}{
		{
			name:           "success - credit check attached",
			body:           `{"customerId":"CUS-1","displayId":"INV-001","totalValue":"750.25","orderDate":"2024-03-01"}`,
			idempotencyKey: "key-1",
			doMock: func(h orderTestHelper) {
				h.expectIdempotency(true)
				h.mockOrderSvc.EXPECT().
					Create(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.CreateOrderIn) (*models.CreateOrderResult, error) {
						assert.Equal(t, "CUS-1", in.CustomerID)
						assert.Equal(t, models.OrderSourceBackOffice, in.Source)
						assert.True(t, in.OrderDate.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
						return &models.CreateOrderResult{
							Order: models.Order{
								ID:         "ORD-1",
								CustomerID: in.CustomerID,
								DisplayID:  in.DisplayID,
								TotalValue: in.TotalValue,
								OrderDate:  in.OrderDate,
								Status:     models.OrderStatusPlaced,
							},
							CreditCheck: models.EvaluateCreditLimit(decimal.NewFromInt(500), in.TotalValue, &ceiling),
						}, nil
					})
			},
			wantCode: nethttp.StatusCreated,
			wantRes:  `{"kind":"order","id":"ORD-1","customerId":"CUS-1","displayId":"INV-001","totalValue":750.25,"orderDate":"2024-03-01","status":"placed","creditCheck":{"currentBalance":500,"prospectiveAmount":750.25,"projectedBalance":1250.25,"creditCeiling":1000,"enabled":true,"exceeds":true}}`,
		},
		{
			name:     "failed - missing idempotency key",
			body:     `{"customerId":"CUS-1","displayId":"INV-001","totalValue":10}`,
			wantCode: nethttp.StatusBadRequest,
			wantRes:  `{"status":"error","code":400,"message":"missing idempotency key. this operation requires idempotency key"}`,
		},
		{
			name:           "failed - validation",
			body:           `{"customerId":"","displayId":"INV-001","totalValue":0,"orderDate":"01-03-2024"}`,
			idempotencyKey: "key-2",
			doMock: func(h orderTestHelper) {
				h.expectIdempotency(false)
			},
			wantCode: nethttp.StatusUnprocessableEntity,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"400201","field":"customerId","message":"customerId is required"},{"code":"400203","field":"totalValue","message":"totalValue must be greater than zero"},{"code":"400204","field":"orderDate","message":"orderDate must be formatted as yyyy-mm-dd"}]}`,
		},
		{
			name:           "failed - blocked by credit ceiling",
			body:           `{"customerId":"CUS-1","displayId":"INV-002","totalValue":10}`,
			idempotencyKey: "key-3",
			doMock: func(h orderTestHelper) {
				h.expectIdempotency(false)
				h.mockOrderSvc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, common.ErrCreditLimitExceeded)
			},
			wantCode: nethttp.StatusUnprocessableEntity,
			wantRes:  `{"status":"error","code":"422001","message":"credit limit exceeded"}`,
		},
		{
			name:           "failed - duplicate display id",
			body:           `{"customerId":"CUS-1","displayId":"INV-001","totalValue":10}`,
			idempotencyKey: "key-4",
			doMock: func(h orderTestHelper) {
				h.expectIdempotency(false)
				h.mockOrderSvc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, models.GetErrMap(models.ErrKeyOrderAlreadyExists))
			},
			wantCode: nethttp.StatusConflict,
			wantRes:  `{"status":"error","code":"409002","message":"order with the same display id already exists"}`,
		},
		{
			name:           "failed - error service",
			body:           `{"customerId":"CUS-1","displayId":"INV-003","totalValue":10}`,
			idempotencyKey: "key-5",
			doMock: func(h orderTestHelper) {
				h.expectIdempotency(false)
				h.mockOrderSvc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantCode: nethttp.StatusInternalServerError,
			wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHelper := getOrderTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(testHelper)
			}

			req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/orders", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.idempotencyKey != "" {
				req.Header.Set("X-Idempotency-Key", tt.idempotencyKey)
			}

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantRes, strings.TrimSuffix(string(body), "\n"))
			require.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}
