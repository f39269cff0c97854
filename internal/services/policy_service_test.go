package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
	"github.com/printhaus/go-shop-finance/internal/models"
)

func activePolicy(id string, freq models.Frequency, anchor time.Time) models.Policy {
	return models.Policy{
		ID:                id,
		CustomerID:        "CUS-1",
		PolicyNumber:      "PN-" + id,
		Insurer:           "Asuransi Maju",
		Frequency:         freq,
		IssuanceDate:      anchor.AddDate(-1, 0, 0),
		AnchorDate:        anchor,
		InstallmentAmount: dec("125000"),
		Status:            models.PolicyStatusActive,
	}
}

func TestPolicyService_Create(t *testing.T) {
	tests := []struct {
		name       string
		in         models.CreatePolicyIn
		doMock     func(h testServiceHelper)
		wantErr    error
		wantAnchor time.Time
	}{
		{
			name: "success - anchor one period after issuance",
			in: models.CreatePolicyIn{
				CustomerID:        "CUS-1",
				PolicyNumber:      "PN-1",
				Insurer:           "Asuransi Maju",
				Frequency:         models.FrequencyQuarterly,
				IssuanceDate:      date(2023, 11, 30),
				InstallmentAmount: dec("300000"),
			},
			doMock: func(h testServiceHelper) {
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixPolicy).Return("POL-1")
				h.mockPolicyRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *models.Policy) (*models.Policy, error) { return p, nil })
			},
			wantAnchor: date(2024, 2, 29),
		},
		{
			name:    "failed - unknown frequency",
			in:      models.CreatePolicyIn{CustomerID: "CUS-1", Frequency: "Weekly", IssuanceDate: date(2024, 1, 1)},
			doMock:  func(h testServiceHelper) {},
			wantErr: common.ErrInvalidFrequency,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h)

			out, err := h.services.Policy.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAnchor, out.AnchorDate)
			assert.Equal(t, models.PolicyStatusActive, out.Status)
		})
	}
}

func TestPolicyService_GetDue(t *testing.T) {
	tests := []struct {
		name        string
		policy      models.Policy
		ref         time.Time
		wantDue     time.Time
		wantOverdue int
		wantReason  string
	}{
		{
			name:    "anchor in the future",
			policy:  activePolicy("POL-1", models.FrequencyMonthly, date(2024, 4, 5)),
			ref:     date(2024, 3, 15),
			wantDue: date(2024, 4, 5),
		},
		{
			name:    "anchor on reference date",
			policy:  activePolicy("POL-1", models.FrequencyMonthly, date(2024, 3, 15)),
			ref:     date(2024, 3, 15),
			wantDue: date(2024, 3, 15),
		},
		{
			name:        "overdue month-end anchor steps through the clamped February",
			policy:      activePolicy("POL-1", models.FrequencyMonthly, date(2024, 1, 31)),
			ref:         date(2024, 3, 15),
			wantDue:     date(2024, 3, 29),
			wantOverdue: 2,
		},
		{
			name:       "unknown frequency",
			policy:     activePolicy("POL-1", "Fortnightly", date(2024, 1, 31)),
			ref:        date(2024, 3, 15),
			wantReason: models.DueUnavailableUnknownFrequency,
		},
		{
			name:       "anchor too far in the past",
			policy:     activePolicy("POL-1", models.FrequencyMonthly, date(1990, 1, 1)),
			ref:        date(2024, 3, 15),
			wantReason: models.DueUnavailableCeilingExceeded,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			p := tt.policy
			h.mockPolicyRepository.EXPECT().GetByID(gomock.Any(), "POL-1").Return(&p, nil)

			out, err := h.services.Policy.GetDue(context.Background(), "POL-1", tt.ref)

			require.NoError(t, err)
			assert.Equal(t, tt.wantReason == "", out.Available)
			assert.Equal(t, tt.wantReason, out.Reason)
			assert.Equal(t, tt.wantDue, out.NextDueDate)
			assert.Equal(t, tt.wantOverdue, out.OverduePeriods)
			// projecting never touches the stored anchor
			assert.Equal(t, tt.policy.AnchorDate, out.Policy.AnchorDate)
		})
	}
}

func TestPolicyService_GetDue_notFound(t *testing.T) {
	h := serviceTestHelper(t)
	h.mockPolicyRepository.EXPECT().GetByID(gomock.Any(), "POL-404").Return(nil, common.ErrNoRows)

	out, err := h.services.Policy.GetDue(context.Background(), "POL-404", date(2024, 3, 15))

	assert.Equal(t, models.GetErrMap(models.ErrKeyPolicyNotFound), err)
	assert.Nil(t, out)
}

func TestPolicyService_ListUpcoming(t *testing.T) {
	h := serviceTestHelper(t)
	ref := date(2024, 3, 15)

	h.mockPolicyRepository.EXPECT().
		ListByAnchorBefore(gomock.Any(), []models.PolicyStatus{models.PolicyStatusActive}, date(2024, 4, 14), models.Pagination{Limit: 500}).
		Return([]models.Policy{
			activePolicy("POL-C", models.FrequencyYearly, date(2024, 4, 10)),
			activePolicy("POL-B", models.FrequencyMonthly, date(2024, 1, 31)),
			activePolicy("POL-D", "Weekly", date(2024, 3, 1)),
			activePolicy("POL-A", models.FrequencyMonthly, date(2024, 3, 20)),
			activePolicy("POL-E", models.FrequencyMonthly, date(2024, 3, 31)),
		}, nil)

	out, err := h.services.Policy.ListUpcoming(context.Background(), ref, 0)

	require.NoError(t, err)
	ids := make([]string, 0, len(out))
	for _, d := range out {
		ids = append(ids, d.Policy.ID)
	}
	assert.Equal(t, []string{"POL-A", "POL-B", "POL-E", "POL-C"}, ids)
}

func TestPolicyService_ListUpcoming_ReferenceInAnotherZone(t *testing.T) {
	h := serviceTestHelper(t)
	wib := time.FixedZone("WIB", 7*60*60)
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, wib)

	h.mockPolicyRepository.EXPECT().
		ListByAnchorBefore(gomock.Any(), []models.PolicyStatus{models.PolicyStatusActive}, time.Date(2024, 3, 18, 0, 0, 0, 0, wib), models.Pagination{Limit: 500}).
		Return([]models.Policy{
			activePolicy("POL-YESTERDAY", models.FrequencyMonthly, date(2024, 3, 14)),
			activePolicy("POL-TODAY", models.FrequencyMonthly, date(2024, 3, 15)),
			activePolicy("POL-LAST-DAY", models.FrequencyMonthly, date(2024, 3, 18)),
		}, nil)

	out, err := h.services.Policy.ListUpcoming(context.Background(), ref, 3)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "POL-TODAY", out[0].Policy.ID)
	assert.Equal(t, date(2024, 3, 15), out[0].NextDueDate)
	assert.Zero(t, out[0].OverduePeriods)
	assert.Equal(t, "POL-LAST-DAY", out[1].Policy.ID)
	assert.Equal(t, date(2024, 3, 18), out[1].NextDueDate)
}

func TestPolicyService_MarkPaid(t *testing.T) {
	tests := []struct {
		name    string
		policy  *models.Policy
		getErr  error
		doMock  func(h testServiceHelper)
		wantErr error
	}{
		{
			name:   "success - overdue policy advances one period only",
			policy: func() *models.Policy { p := activePolicy("POL-1", models.FrequencyMonthly, date(2024, 1, 31)); return &p }(),
			doMock: func(h testServiceHelper) {
				h.mockPolicyRepository.EXPECT().
					UpdateAnchor(gomock.Any(), "POL-1", date(2024, 2, 29)).
					DoAndReturn(func(_ context.Context, id string, anchor time.Time) (*models.Policy, error) {
						p := activePolicy(id, models.FrequencyMonthly, anchor)
						return &p, nil
					})
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixPolicyPayment).Return("PPY-1")
				h.mockPolicyRepository.EXPECT().
					CreatePolicyPayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in *models.PolicyPayment) error {
						assert.Equal(t, date(2024, 1, 31), in.PaidAnchor)
						assert.Equal(t, date(2024, 2, 29), in.NewAnchor)
						assert.Equal(t, fixedNow, in.PaidAt)
						return nil
					})
				h.mockPolicyPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "failed - not found",
			getErr:  common.ErrNoRows,
			doMock:  func(h testServiceHelper) {},
			wantErr: models.GetErrMap(models.ErrKeyPolicyNotFound),
		},
		{
			name: "failed - lapsed policy",
			policy: func() *models.Policy {
				p := activePolicy("POL-1", models.FrequencyMonthly, date(2024, 1, 31))
				p.Status = models.PolicyStatusLapsed
				return &p
			}(),
			doMock:  func(h testServiceHelper) {},
			wantErr: common.ErrPolicyNotActive,
		},
		{
			name:   "failed - payment insert rolls back",
			policy: func() *models.Policy { p := activePolicy("POL-1", models.FrequencyMonthly, date(2024, 1, 31)); return &p }(),
			doMock: func(h testServiceHelper) {
				h.mockPolicyRepository.EXPECT().UpdateAnchor(gomock.Any(), "POL-1", date(2024, 2, 29)).Return(&models.Policy{ID: "POL-1"}, nil)
				h.mockIDGenerator.EXPECT().Generate(idgenerator.PrefixPolicyPayment).Return("PPY-1")
				h.mockPolicyRepository.EXPECT().CreatePolicyPayment(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			wantErr: models.GetErrMap(models.ErrKeyDatabaseError, assert.AnError.Error()),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			h.mockPolicyRepository.EXPECT().GetByIDForUpdate(gomock.Any(), "POL-1").Return(tt.policy, tt.getErr)
			tt.doMock(h)

			out, err := h.services.Policy.MarkPaid(context.Background(), "POL-1")
			if tt.wantErr != nil {
				if _, ok := tt.wantErr.(models.ErrorDetail); ok {
					assert.Equal(t, tt.wantErr, err)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, date(2024, 2, 29), out.Policy.AnchorDate)
			assert.Equal(t, "PPY-1", out.Payment.ID)
		})
	}
}

func TestPolicyService_PublishDueReminders(t *testing.T) {
	tests := []struct {
		name        string
		gatewayFlag bool
		doMock      func(h testServiceHelper)
		want        models.ReminderPublishResult
	}{
		{
			name:        "kafka only",
			gatewayFlag: false,
			doMock: func(h testServiceHelper) {
				h.mockReminderPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
			want: models.ReminderPublishResult{ReferenceDate: "2024-03-15", Due: 2, Published: 2},
		},
		{
			name:        "kafka and gateway with failures",
			gatewayFlag: true,
			doMock: func(h testServiceHelper) {
				gomock.InOrder(
					h.mockReminderPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
					h.mockReminderPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError),
				)
				h.mockReminderGateway.EXPECT().
					SendReminder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r models.PolicyDueReminder) error {
						if r.PolicyID == "POL-2" {
							return assert.AnError
						}
						return nil
					}).
					Times(2)
			},
			want: models.ReminderPublishResult{
				ReferenceDate:    "2024-03-15",
				Due:              2,
				Published:        1,
				Failed:           1,
				GatewayDelivered: 1,
				GatewayFailed:    1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			h.mockPolicyRepository.EXPECT().
				ListByAnchorBefore(gomock.Any(), gomock.Any(), date(2024, 3, 18), gomock.Any()).
				Return([]models.Policy{
					activePolicy("POL-2", models.FrequencyQuarterly, date(2024, 3, 17)),
					activePolicy("POL-1", models.FrequencyMonthly, date(2024, 3, 16)),
				}, nil)
			h.mockFlagClient.EXPECT().IsEnabled("send_reminder_to_gateway").Return(tt.gatewayFlag)
			tt.doMock(h)

			out, err := h.services.Policy.PublishDueReminders(context.Background(), date(2024, 3, 15))

			require.NoError(t, err)
			assert.Equal(t, tt.want, *out)
		})
	}
}
