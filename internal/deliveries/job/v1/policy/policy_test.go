package policy

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/printhaus/go-shop-finance/internal/common/flag"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/services/mock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_policyHandler_PublishDuePolicyReminders(t *testing.T) {
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		doMock  func(m *mock.MockPolicyService)
		wantErr bool
	}{
		{
			name: "success",
			doMock: func(m *mock.MockPolicyService) {
				m.EXPECT().PublishDueReminders(gomock.Any(), date).Return(&models.ReminderPublishResult{
					ReferenceDate: "2024-03-15",
					Due:           2,
					Published:     2,
				}, nil)
			},
		},
		{
			name: "error service",
			doMock: func(m *mock.MockPolicyService) {
				m.EXPECT().PublishDueReminders(gomock.Any(), date).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPolicySvc := mock.NewMockPolicyService(gomock.NewController(t))
			tt.doMock(mockPolicySvc)

			fn := Routes(mockPolicySvc)["PublishDuePolicyReminders"]
			err := fn(context.TODO(), date, flag.Job{JobName: "PublishDuePolicyReminders", Version: "v1"})
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
