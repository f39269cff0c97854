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

func TestOrderService_Create(t *testing.T) {
	in := models.CreateOrderIn{
		CustomerID: "CUS-1",
		DisplayID:  "INV-010",
		TotalValue: dec("300"),
		OrderDate:  date(2024, 3, 1),
	}
	created := func(_ context.Context, o *models.Order) (*models.Order, error) {
		o.CreatedAt = fixedNow
		return o, nil
	}
	// current balance is 250
	history := func(h testServiceHelper) {
		h.expectRecords("CUS-1",
			[]models.Order{{ID: "ORD-0", TotalValue: dec("250"), OrderDate: date(2024, 2, 1)}},
			nil, nil)
	}

	tests := []struct {
		name        string
		ceiling     string
		doMock      func(h testServiceHelper)
		wantErr     error
		wantExceeds bool
	}{
		{
			name:    "success - within ceiling",
			ceiling: "1000",
			doMock: func(h testServiceHelper) {
				history(h)
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixOrder).Return("ORD-1")
				h.mockOrderRepository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(created)
				h.mockOrderPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "success - exceeding ceiling only warns when flag is off",
			ceiling: "500",
			doMock: func(h testServiceHelper) {
				history(h)
				h.mockFlagClient.EXPECT().IsEnabled("block_order_on_credit_limit").Return(false)
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixOrder).Return("ORD-1")
				h.mockOrderRepository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(created)
				h.mockOrderPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantExceeds: true,
		},
		{
			name:    "success - publish failure does not fail the order",
			ceiling: "",
			doMock: func(h testServiceHelper) {
				history(h)
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixOrder).Return("ORD-1")
				h.mockOrderRepository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(created)
				h.mockOrderPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
		},
		{
			name:    "failed - blocked when flag is on",
			ceiling: "500",
			doMock: func(h testServiceHelper) {
				history(h)
				h.mockFlagClient.EXPECT().IsEnabled("block_order_on_credit_limit").Return(true)
			},
			wantErr: common.ErrCreditLimitExceeded,
		},
		{
			name:    "failed - duplicate display id",
			ceiling: "",
			doMock: func(h testServiceHelper) {
				history(h)
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixOrder).Return("ORD-1")
				h.mockOrderRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, common.ErrDataExist)
			},
			wantErr: common.ErrOrderAlreadyExists,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			h.mockCustomerRepository.EXPECT().GetByID(gomock.Any(), "CUS-1").Return(ceilingCustomer("CUS-1", tt.ceiling), nil)
			tt.doMock(h)

			out, err := h.services.Order.Create(context.Background(), in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ORD-1", out.Order.ID)
			assert.Equal(t, models.OrderSourceBackOffice, out.Order.Source)
			assert.Equal(t, models.OrderStatusPlaced, out.Order.Status)
			assert.Equal(t, tt.wantExceeds, out.CreditCheck.Exceeds)
			assert.True(t, dec("550").Equal(out.CreditCheck.ProjectedBalance))
		})
	}
}
