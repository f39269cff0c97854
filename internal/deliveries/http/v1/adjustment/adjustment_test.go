package adjustment

import (
	"context"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/http/middleware"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/models"
	mockRepo "github.com/printhaus/go-shop-finance/internal/repositories/mock"
	"github.com/printhaus/go-shop-finance/internal/services/mock"
)

type adjustmentTestHelper struct {
	router            *echo.Echo
	mockAdjustmentSvc *mock.MockAdjustmentService
	mockCacheRepo     *mockRepo.MockCacheRepository
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func getAdjustmentTestHelper(t *testing.T) adjustmentTestHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	h := adjustmentTestHelper{
		router:            echo.New(),
		mockAdjustmentSvc: mock.NewMockAdjustmentService(mockCtrl),
		mockCacheRepo:     mockRepo.NewMockCacheRepository(mockCtrl),
	}
	m := middleware.NewMiddleware(config.Config{}, h.mockCacheRepo)
	New(h.router.Group("/api/v1"), h.mockAdjustmentSvc, m, time.UTC)

	h.mockCacheRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", common.ErrDataNotFound).AnyTimes()
	h.mockCacheRepo.EXPECT().SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	h.mockCacheRepo.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	h.mockCacheRepo.EXPECT().Del(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return h
}

func TestHandlerCreateAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		doMock   func(h adjustmentTestHelper)
		wantCode int
		wantRes  string
	}{
		{
			name: "success - date defaults to today",
			body: `{"customerId":"CUS-1","amount":50,"type":"credit","remarks":"goodwill discount"}`,
			doMock: func(h adjustmentTestHelper) {
				h.mockAdjustmentSvc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.CreateAdjustmentIn) (*models.Adjustment, error) {
						assert.Equal(t, models.AdjustmentTypeCredit, in.Type)
						assert.False(t, in.AdjustedAt.IsZero())
						return &models.Adjustment{
							ID:         "ADJ-1",
							CustomerID: in.CustomerID,
							Amount:     in.Amount,
							Type:       in.Type,
							AdjustedAt: time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
							Remarks:    in.Remarks,
						}, nil
					})
			},
			wantCode: nethttp.StatusCreated,
			wantRes:  `{"kind":"adjustment","id":"ADJ-1","customerId":"CUS-1","amount":50,"type":"credit","adjustedAt":"2024-03-03","remarks":"goodwill discount"}`,
		},
		{
			name:     "failed - unknown type",
			body:     `{"customerId":"CUS-1","amount":50,"type":"refund","remarks":"x"}`,
			wantCode: nethttp.StatusUnprocessableEntity,
			wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"400402","field":"type","message":"type must be debit or credit"}]}`,
		},
		{
			name: "failed - error service",
			body: `{"customerId":"CUS-1","amount":50,"type":"debit","adjustedAt":"2024-03-03","remarks":"reprint fee"}`,
			doMock: func(h adjustmentTestHelper) {
				h.mockAdjustmentSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			wantCode: nethttp.StatusInternalServerError,
			wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := getAdjustmentTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/adjustments", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Idempotency-Key", "adj-"+tt.name)

			rec := httptest.NewRecorder()
			h.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Equal(t, tt.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
