package services

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

const (
	logLedger = "[LEDGER]"

	defaultMaxRecordsPerKind uint64 = 10000
)

type LedgerService interface {
	// GetLedger reconciles every order, payment and adjustment of the customer.
	GetLedger(ctx context.Context, customerID string) (out *models.CustomerLedger, err error)
	GetSummary(ctx context.Context, customerID string) (out *models.BalanceSummary, err error)
	CheckCredit(ctx context.Context, customerID string, prospective decimal.Decimal) (out *models.CreditLimitCheck, err error)
}

type ledger service

var _ LedgerService = (*ledger)(nil)

type customerRecords struct {
	orders      []models.Order
	payments    []models.Payment
	adjustments []models.Adjustment
}

func (s *ledger) recordLimit() uint64 {
	if s.srv.conf.Ledger.MaxRecordsPerKind > 0 {
		return s.srv.conf.Ledger.MaxRecordsPerKind
	}
	return defaultMaxRecordsPerKind
}

// fetchRecords loads the three record kinds concurrently. The normalizer does
// not depend on which fetch finishes first. One row past the limit is asked
// for so a customer over the limit fails instead of reconciling a partial set.
func (s *ledger) fetchRecords(ctx context.Context, customerID string) (records customerRecords, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	limit := s.recordLimit()
	fetch := limit + 1
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orders, err := s.srv.sqlRepo.GetOrderRepository().ListByCustomer(gctx, customerID, fetch)
		records.orders = orders
		return err
	})
	g.Go(func() error {
		payments, err := s.srv.sqlRepo.GetPaymentRepository().ListByCustomer(gctx, customerID, fetch)
		records.payments = payments
		return err
	})
	g.Go(func() error {
		adjustments, err := s.srv.sqlRepo.GetAdjustmentRepository().ListByCustomer(gctx, customerID, fetch)
		records.adjustments = adjustments
		return err
	})

	if err = g.Wait(); err != nil {
		err = checkDatabaseError(err)
		return customerRecords{}, err
	}

	counts := map[string]int{
		models.RecordKindOrder:      len(records.orders),
		models.RecordKindPayment:    len(records.payments),
		models.RecordKindAdjustment: len(records.adjustments),
	}
	for kind, n := range counts {
		if uint64(n) > limit {
			xlog.Warn(ctx, logLedger,
				xlog.String("message", "record limit exceeded"),
				xlog.String("customerId", customerID),
				xlog.String("kind", kind),
				xlog.Int64("limit", int64(limit)))
			err = models.GetErrMap(models.ErrKeyLedgerTooLarge)
			return customerRecords{}, err
		}
	}

	return records, nil
}

// normalize converts the records and reports every dropped one.
func (s *ledger) normalize(ctx context.Context, customerID string, records customerRecords) models.NormalizeResult {
	res := models.NormalizeTransactions(records.orders, records.payments, records.adjustments)

	mtc := s.srv.ledgerMetrics()
	for _, d := range res.Dropped {
		mtc.RecordDropped(d.Kind, d.Reason)
		xlog.Warn(ctx, logLedger,
			xlog.String("message", "record dropped"),
			xlog.String("customerId", customerID),
			xlog.String("kind", d.Kind),
			xlog.String("sourceId", d.SourceID),
			xlog.String("reason", d.Reason))
	}

	return res
}

func (s *ledger) summary(ctx context.Context, customerID string) (models.BalanceSummary, error) {
	records, err := s.fetchRecords(ctx, customerID)
	if err != nil {
		return models.BalanceSummary{}, err
	}

	res := s.normalize(ctx, customerID, records)
	return models.Summarize(res.Transactions, s.srv.ledgerOpts...), nil
}

func (s *ledger) GetLedger(ctx context.Context, customerID string) (out *models.CustomerLedger, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if _, err = s.srv.Customer.Get(ctx, customerID); err != nil {
		return nil, err
	}

	records, err := s.fetchRecords(ctx, customerID)
	if err != nil {
		return nil, err
	}

	res := s.normalize(ctx, customerID, records)
	entries := models.Reconcile(res.Transactions, s.srv.ledgerOpts...)
	s.srv.ledgerMetrics().RecordLedgerSize(len(entries))

	out = &models.CustomerLedger{
		CustomerID:     customerID,
		Entries:        entries,
		Summary:        models.Summarize(res.Transactions, s.srv.ledgerOpts...),
		DroppedRecords: res.Dropped,
		GeneratedAt:    s.srv.now(),
	}

	return out, nil
}

func (s *ledger) GetSummary(ctx context.Context, customerID string) (out *models.BalanceSummary, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if _, err = s.srv.Customer.Get(ctx, customerID); err != nil {
		return nil, err
	}

	summary, err := s.summary(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// evaluate runs the credit check for a customer already loaded by the caller.
func (s *ledger) evaluate(ctx context.Context, c *models.Customer, prospective decimal.Decimal) (models.CreditLimitCheck, error) {
	summary, err := s.summary(ctx, c.ID)
	if err != nil {
		return models.CreditLimitCheck{}, err
	}

	return models.EvaluateCreditLimit(summary.FinalBalance, prospective, c.Ceiling()), nil
}

func (s *ledger) CheckCredit(ctx context.Context, customerID string, prospective decimal.Decimal) (out *models.CreditLimitCheck, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	c, err := s.srv.Customer.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	check, err := s.evaluate(ctx, c, prospective)
	if err != nil {
		return nil, err
	}

	if check.Exceeds {
		s.srv.ledgerMetrics().RecordCreditWarning(false)
		xlog.Info(ctx, logLedger,
			xlog.String("message", "credit limit would be exceeded"),
			xlog.String("customerId", customerID),
			xlog.String("projectedBalance", check.ProjectedBalance.String()),
			xlog.String("creditCeiling", check.CreditCeiling.String()))
	}

	return &check, nil
}
