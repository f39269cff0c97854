package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
	"github.com/printhaus/go-shop-finance/internal/models"
)

func TestCustomerService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateCustomerRequest
		doMock  func(h testServiceHelper)
		wantErr error
	}{
		{
			name: "success with ceiling",
			req: models.CreateCustomerRequest{
				Name:          "Ardi Print",
				CreditCeiling: &models.Decimal{Decimal: dec("2500000")},
			},
			doMock: func(h testServiceHelper) {
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixCustomer).Return("CUS-1")
				h.mockCustomerRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in *models.Customer) (*models.Customer, error) {
						assert.Equal(t, "CUS-1", in.ID)
						assert.True(t, in.CreditCeiling.Valid)
						return in, nil
					})
			},
		},
		{
			name: "failed - duplicate",
			req:  models.CreateCustomerRequest{Name: "Ardi Print"},
			doMock: func(h testServiceHelper) {
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixCustomer).Return("CUS-1")
				h.mockCustomerRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, common.ErrDataExist)
			},
			wantErr: models.GetErrMap(models.ErrKeyDataIsExist),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h)

			out, err := h.services.Customer.Create(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "CUS-1", out.ID)
		})
	}
}

func TestCustomerService_Get_cached(t *testing.T) {
	h := serviceTestHelper(t)
	h.mockCustomerRepository.EXPECT().GetByID(gomock.Any(), "CUS-1").Return(ceilingCustomer("CUS-1", "100"), nil).Times(1)

	for i := 0; i < 3; i++ {
		out, err := h.services.Customer.Get(context.Background(), "CUS-1")
		require.NoError(t, err)
		assert.Equal(t, "CUS-1", out.ID)
	}
}

func TestCustomerService_UpdateCreditCeiling(t *testing.T) {
	tests := []struct {
		name      string
		ceiling   *decimal.Decimal
		wantValid bool
	}{
		{name: "positive ceiling", ceiling: func() *decimal.Decimal { d := dec("750"); return &d }(), wantValid: true},
		{name: "zero disables", ceiling: &decimal.Zero, wantValid: false},
		{name: "nil disables", ceiling: nil, wantValid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			gomock.InOrder(
				h.mockCustomerRepository.EXPECT().GetByID(gomock.Any(), "CUS-1").Return(ceilingCustomer("CUS-1", "100"), nil),
				h.mockCustomerRepository.EXPECT().
					UpdateCreditCeiling(gomock.Any(), "CUS-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, id string, v decimal.NullDecimal) (*models.Customer, error) {
						assert.Equal(t, tt.wantValid, v.Valid)
						return &models.Customer{ID: id, CreditCeiling: v}, nil
					}),
				// the cached copy is dropped, so the next read goes to the database
				h.mockCustomerRepository.EXPECT().GetByID(gomock.Any(), "CUS-1").Return(ceilingCustomer("CUS-1", ""), nil),
			)

			_, err := h.services.Customer.Get(context.Background(), "CUS-1")
			require.NoError(t, err)

			_, err = h.services.Customer.UpdateCreditCeiling(context.Background(), "CUS-1", tt.ceiling)
			require.NoError(t, err)

			out, err := h.services.Customer.Get(context.Background(), "CUS-1")
			require.NoError(t, err)
			assert.Nil(t, out.Ceiling())
		})
	}
}

func TestCustomerService_List(t *testing.T) {
	h := serviceTestHelper(t)
	filter := models.CustomerFilter{Search: "print", Pagination: models.Pagination{Limit: 10}}
	h.mockCustomerRepository.EXPECT().List(gomock.Any(), filter).Return([]models.Customer{{ID: "CUS-1"}}, nil)
	h.mockCustomerRepository.EXPECT().Count(gomock.Any(), filter).Return(1, nil)

	out, total, err := h.services.Customer.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, 1, total)
}
