package settlement

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/flag"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/services/mock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_settlementHandler_ImportPaymentSettlement(t *testing.T) {
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		res     *models.SettlementImportResult
		err     error
		wantErr error
	}{
		{
			name: "success",
			res:  &models.SettlementImportResult{Date: "2024-03-15", Rows: 10, Imported: 8, Duplicates: 2},
		},
		{
			name:    "file not dropped yet",
			err:     common.ErrSettlementNotFound,
			wantErr: common.ErrSettlementNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mock.NewMockSettlementService(gomock.NewController(t))
			svc.EXPECT().ImportPaymentSettlement(gomock.Any(), date).Return(tt.res, tt.err)

			err := Routes(svc)["ImportPaymentSettlement"](context.TODO(), date, flag.Job{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
