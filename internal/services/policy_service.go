package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
	"github.com/printhaus/go-shop-finance/internal/repositories"
)

const (
	logRecurrence = "[RECURRENCE]"

	defaultUpcomingHorizonDays = 30
	defaultReminderHorizonDays = 3
	policyScanPageSize         = 500
)

type PolicyService interface {
	Create(ctx context.Context, in models.CreatePolicyIn) (out *models.Policy, err error)
	Get(ctx context.Context, id string) (out *models.Policy, err error)
	List(ctx context.Context, filter models.PolicyFilter) (out []models.Policy, total int, err error)
	// GetDue projects the next due date at ref without changing the policy.
	GetDue(ctx context.Context, id string, ref time.Time) (out *models.PolicyDue, err error)
	ListUpcoming(ctx context.Context, ref time.Time, horizonDays int) (out []models.PolicyDue, err error)
	// MarkPaid moves the stored anchor forward by exactly one period.
	MarkPaid(ctx context.Context, id string) (out *models.MarkPaidResult, err error)
	PublishDueReminders(ctx context.Context, ref time.Time) (out *models.ReminderPublishResult, err error)
}

type policy service

var _ PolicyService = (*policy)(nil)

func (s *policy) Create(ctx context.Context, in models.CreatePolicyIn) (out *models.Policy, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	anchor, err := models.InitialAnchor(in.IssuanceDate, in.Frequency)
	if err != nil {
		err = fmt.Errorf("%w: %w", common.ErrInvalidFrequency, err)
		return nil, err
	}

	out, err = s.srv.sqlRepo.GetPolicyRepository().Create(ctx, &models.Policy{
		ID:                s.srv.idgenerator.Generate(idgenerator.PrefixPolicy),
		CustomerID:        in.CustomerID,
		PolicyNumber:      in.PolicyNumber,
		Insurer:           in.Insurer,
		Frequency:         in.Frequency,
		IssuanceDate:      models.TruncateToDate(in.IssuanceDate),
		AnchorDate:        anchor,
		InstallmentAmount: in.InstallmentAmount,
		Status:            models.PolicyStatusActive,
	})
	if err != nil {
		err = checkWriteError(err, models.ErrKeyDataIsExist)
		return nil, err
	}

	return out, nil
}

func (s *policy) Get(ctx context.Context, id string) (out *models.Policy, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	out, err = s.srv.sqlRepo.GetPolicyRepository().GetByID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyPolicyNotFound)
		return nil, err
	}

	return out, nil
}

func (s *policy) List(ctx context.Context, filter models.PolicyFilter) (out []models.Policy, total int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	repo := s.srv.sqlRepo.GetPolicyRepository()

	out, err = repo.List(ctx, filter)
	if err != nil {
		err = checkDatabaseError(err)
		return nil, 0, err
	}

	total, err = repo.Count(ctx, filter)
	if err != nil {
		err = checkDatabaseError(err)
		return nil, 0, err
	}

	return out, total, nil
}

// project builds the due view of p at ref. A projection failure is not an
// error for the caller: the view reports it as unavailable with a reason.
func (s *policy) project(ctx context.Context, p models.Policy, ref time.Time) models.PolicyDue {
	due := models.PolicyDue{Policy: p, ReferenceDate: models.TruncateToDate(ref)}

	projection, err := models.ProjectDueDate(p.AnchorDate, p.Frequency, ref, s.srv.projectionOpts...)
	if err != nil {
		due.Reason = projectionFailureReason(err)
		s.srv.ledgerMetrics().RecordProjectionFailure(due.Reason)
		xlog.Warn(ctx, logRecurrence,
			xlog.String("message", "due date unavailable"),
			xlog.String("policyId", p.ID),
			xlog.String("frequency", string(p.Frequency)),
			xlog.String("anchorDate", models.FormatDate(p.AnchorDate)),
			xlog.String("reason", due.Reason),
			xlog.Err(err))
		return due
	}

	due.Available = true
	due.NextDueDate = projection.DueDate
	due.OverduePeriods = projection.Advances

	return due
}

func projectionFailureReason(err error) string {
	switch {
	case errors.Is(err, models.ErrUnknownFrequency):
		return models.DueUnavailableUnknownFrequency
	case errors.Is(err, models.ErrProjectionCeilingExceeded):
		return models.DueUnavailableCeilingExceeded
	default:
		return "unknown"
	}
}

func (s *policy) GetDue(ctx context.Context, id string, ref time.Time) (out *models.PolicyDue, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	due := s.project(ctx, *p, ref)
	return &due, nil
}

// ListUpcoming returns the active policies whose projected due date falls on
// or before ref plus horizonDays, earliest first. Policies whose due date
// cannot be projected are left out.
func (s *policy) ListUpcoming(ctx context.Context, ref time.Time, horizonDays int) (out []models.PolicyDue, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if horizonDays <= 0 {
		horizonDays = s.srv.conf.Recurrence.UpcomingHorizonDays
	}
	if horizonDays <= 0 {
		horizonDays = defaultUpcomingHorizonDays
	}

	ref = models.TruncateToDate(ref)
	until := ref.AddDate(0, 0, horizonDays)
	repo := s.srv.sqlRepo.GetPolicyRepository()
	statuses := []models.PolicyStatus{models.PolicyStatusActive}

	out = []models.PolicyDue{}
	for page := (models.Pagination{Limit: policyScanPageSize}); ; page = nextPage(page) {
		policies, errList := repo.ListByAnchorBefore(ctx, statuses, until, page)
		if errList != nil {
			err = checkDatabaseError(errList)
			return nil, err
		}

		for _, p := range policies {
			due := s.project(ctx, p, ref)
			if due.Available && !due.NextDueDate.After(models.CalendarDateIn(until, due.NextDueDate.Location())) {
				out = append(out, due)
			}
		}

		if pageDone(len(policies), page) {
			break
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].NextDueDate.Equal(out[j].NextDueDate) {
			return out[i].NextDueDate.Before(out[j].NextDueDate)
		}
		return out[i].Policy.ID < out[j].Policy.ID
	})

	return out, nil
}

// MarkPaid locks the policy row, advances its stored anchor by one period and
// records the installment in one transaction. The event is published after commit.
func (s *policy) MarkPaid(ctx context.Context, id string) (out *models.MarkPaidResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	var result models.MarkPaidResult
	err = s.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		repo := r.GetPolicyRepository()

		p, err := repo.GetByIDForUpdate(actx, id)
		if err != nil {
			return checkDatabaseError(err, models.ErrKeyPolicyNotFound)
		}
		if !p.IsActive() {
			return fmt.Errorf("%w: policy %s is %s", common.ErrPolicyNotActive, p.ID, p.Status)
		}

		newAnchor, err := models.MarkPaid(p.AnchorDate, p.Frequency)
		if err != nil {
			return fmt.Errorf("%w: %w", common.ErrInvalidFrequency, err)
		}

		updated, err := repo.UpdateAnchor(actx, p.ID, newAnchor)
		if err != nil {
			return checkDatabaseError(err, models.ErrKeyPolicyNotFound)
		}

		installment := models.PolicyPayment{
			ID:         s.srv.idgenerator.Generate(idgenerator.PrefixPolicyPayment),
			PolicyID:   p.ID,
			PaidAnchor: p.AnchorDate,
			NewAnchor:  newAnchor,
			Amount:     p.InstallmentAmount,
			PaidAt:     s.srv.now(),
		}
		if err = repo.CreatePolicyPayment(actx, &installment); err != nil {
			return checkDatabaseError(err)
		}

		result = models.MarkPaidResult{Policy: *updated, Payment: installment}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.srv.publishers.Policy, models.EventTypePolicyInstallmentPaid, result.Policy.ID, models.PolicyInstallmentPaidEvent{
		PolicyID:      result.Policy.ID,
		CustomerID:    result.Policy.CustomerID,
		PaymentID:     result.Payment.ID,
		PaidAnchor:    models.FormatDate(result.Payment.PaidAnchor),
		NewAnchorDate: models.FormatDate(result.Payment.NewAnchor),
		Amount:        models.NewDecimalFromExternal(result.Payment.Amount),
		PaidAt:        result.Payment.PaidAt,
	})

	return &result, nil
}

// PublishDueReminders publishes one reminder per policy due within the
// reminder horizon. With the gateway flag on, each reminder is also posted to
// the reminder gateway; a gateway failure never stops the kafka publish.
func (s *policy) PublishDueReminders(ctx context.Context, ref time.Time) (out *models.ReminderPublishResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	horizon := s.srv.conf.Recurrence.ReminderHorizonDays
	if horizon <= 0 {
		horizon = defaultReminderHorizonDays
	}

	dues, err := s.ListUpcoming(ctx, ref, horizon)
	if err != nil {
		return nil, err
	}

	sendToGateway := s.srv.reminderGateway != nil &&
		s.srv.flag.IsEnabled(s.srv.conf.FeatureFlagKeyLookup.SendReminderToGateway)

	out = &models.ReminderPublishResult{
		ReferenceDate: models.FormatDate(ref),
		Due:           len(dues),
	}
	for _, due := range dues {
		reminder := models.NewPolicyDueReminder(due)

		if publishEvent(ctx, s.srv.publishers.Reminder, models.EventTypePolicyInstallmentDue, due.Policy.ID, reminder) {
			out.Published++
		} else {
			out.Failed++
		}

		if !sendToGateway {
			continue
		}
		if errSend := s.srv.reminderGateway.SendReminder(ctx, reminder); errSend != nil {
			out.GatewayFailed++
			xlog.Warn(ctx, logRecurrence,
				xlog.String("message", "reminder gateway delivery failed"),
				xlog.String("policyId", due.Policy.ID),
				xlog.Err(errSend))
			continue
		}
		out.GatewayDelivered++
	}

	xlog.Info(ctx, logRecurrence,
		xlog.String("message", "due reminders published"),
		xlog.String("referenceDate", out.ReferenceDate),
		xlog.Int("due", out.Due),
		xlog.Int("published", out.Published),
		xlog.Int("failed", out.Failed),
		xlog.Int("gatewayDelivered", out.GatewayDelivered),
		xlog.Int("gatewayFailed", out.GatewayFailed))

	return out, nil
}
