package order

import (
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/http/middleware"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
	mockRepo "github.com/printhaus/go-shop-finance/internal/repositories/mock"
	"github.com/printhaus/go-shop-finance/internal/services/mock"
)

type orderTestHelper struct {
	router        *echo.Echo
	mockCtrl      *gomock.Controller
	mockOrderSvc  *mock.MockOrderService
	mockCacheRepo *mockRepo.MockCacheRepository
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func getOrderTestHelper(t *testing.T) orderTestHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockOrderSvc := mock.NewMockOrderService(mockCtrl)
	mockCacheRepo := mockRepo.NewMockCacheRepository(mockCtrl)

	app := echo.New()
	v1Group := app.Group("/api/v1")
	m := middleware.NewMiddleware(config.Config{}, mockCacheRepo)

	New(v1Group, mockOrderSvc, m, time.UTC)

	return orderTestHelper{
		router:        app,
		mockCtrl:      mockCtrl,
		mockOrderSvc:  mockOrderSvc,
		mockCacheRepo: mockCacheRepo,
	}
}

// expectIdempotency lets one new idempotency key through the middleware.
func (h orderTestHelper) expectIdempotency(succeeded bool) {
	h.mockCacheRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", common.ErrDataNotFound)
	h.mockCacheRepo.EXPECT().SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	if succeeded {
		h.mockCacheRepo.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		return
	}
	h.mockCacheRepo.EXPECT().Del(gomock.Any(), gomock.Any()).Return(nil)
}
