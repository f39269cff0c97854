package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
	"github.com/printhaus/go-shop-finance/internal/models"
)

func TestPaymentService_Create(t *testing.T) {
	tests := []struct {
		name    string
		in      models.CreatePaymentIn
		doMock  func(h testServiceHelper)
		wantErr error
	}{
		{
			name: "success",
			in:   models.CreatePaymentIn{CustomerID: "CUS-1", Amount: dec("120"), PaidAt: date(2024, 3, 2), Method: "cash"},
			doMock: func(h testServiceHelper) {
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixPayment).Return("PAY-1")
				h.mockPaymentRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
						assert.Equal(t, models.PaymentSourceBackOffice, p.Source)
						return p, nil
					})
				h.mockPaymentPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "failed - unknown customer",
			in:   models.CreatePaymentIn{CustomerID: "CUS-404", Amount: dec("120"), Method: "cash"},
			doMock: func(h testServiceHelper) {
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixPayment).Return("PAY-1")
				h.mockPaymentRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, common.ErrDataNotFound)
			},
			wantErr: models.GetErrMap(models.ErrKeyCustomerNotFound),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h)

			out, err := h.services.Payment.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "PAY-1", out.ID)
		})
	}
}

func TestAdjustmentService_Create(t *testing.T) {
	tests := []struct {
		name    string
		in      models.CreateAdjustmentIn
		doMock  func(h testServiceHelper)
		wantErr error
	}{
		{
			name: "success",
			in:   models.CreateAdjustmentIn{CustomerID: "CUS-1", Amount: dec("15"), Type: models.AdjustmentTypeCredit, Remarks: "misprint discount"},
			doMock: func(h testServiceHelper) {
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixAdjustment).Return("ADJ-1")
				h.mockAdjustmentRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *models.Adjustment) (*models.Adjustment, error) { return a, nil })
				h.mockAdjustmentPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "failed - unknown type",
			in:      models.CreateAdjustmentIn{CustomerID: "CUS-1", Amount: dec("15"), Type: "refund"},
			doMock:  func(h testServiceHelper) {},
			wantErr: common.ErrInvalidAdjustmentType,
		},
		{
			name:    "failed - zero amount",
			in:      models.CreateAdjustmentIn{CustomerID: "CUS-1", Amount: dec("0"), Type: models.AdjustmentTypeDebit},
			doMock:  func(h testServiceHelper) {},
			wantErr: common.ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h)

			out, err := h.services.Adjustment.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ADJ-1", out.ID)
		})
	}
}
