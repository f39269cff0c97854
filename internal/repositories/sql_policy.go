package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

var errForUpdateOutsideTx = errors.New("row lock requested outside a transaction")

type PolicyRepository interface {
	Create(ctx context.Context, in *models.Policy) (created *models.Policy, err error)
	GetByID(ctx context.Context, id string) (policy *models.Policy, err error)
	// GetByIDForUpdate locks the policy row until the surrounding Atomic call ends.
	GetByIDForUpdate(ctx context.Context, id string) (policy *models.Policy, err error)
	List(ctx context.Context, filter models.PolicyFilter) (policies []models.Policy, err error)
	Count(ctx context.Context, filter models.PolicyFilter) (total int, err error)
	ListByAnchorBefore(ctx context.Context, statuses []models.PolicyStatus, until time.Time, page models.Pagination) (policies []models.Policy, err error)
	UpdateAnchor(ctx context.Context, id string, anchor time.Time) (updated *models.Policy, err error)
	CreatePolicyPayment(ctx context.Context, in *models.PolicyPayment) (err error)
}

type policyRepository sqlRepo

var _ PolicyRepository = (*policyRepository)(nil)

func scanPolicy(row rowScanner) (*models.Policy, error) {
	var (
		p         models.Policy
		frequency string
		status    string
	)
	err := row.Scan(
		&p.ID,
		&p.CustomerID,
		&p.PolicyNumber,
		&p.Insurer,
		&frequency,
		&p.IssuanceDate,
		&p.AnchorDate,
		&p.InstallmentAmount,
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Frequency = models.Frequency(frequency)
	p.Status = models.PolicyStatus(status)

	return &p, nil
}

func (pr *policyRepository) scanPolicies(ctx context.Context, query string, args ...any) ([]models.Policy, error) {
	db := pr.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []models.Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan policy: %w", err)
		}
		policies = append(policies, *p)
	}

	return policies, rows.Err()
}

func (pr *policyRepository) Create(ctx context.Context, in *models.Policy) (created *models.Policy, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := pr.r.extractTxWrite(ctx)

	created, err = scanPolicy(db.QueryRowContext(ctx, queryPolicyCreate,
		in.ID, in.CustomerID, in.PolicyNumber, in.Insurer, string(in.Frequency),
		in.IssuanceDate, in.AnchorDate, in.InstallmentAmount, string(in.Status),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", translateError(err))
	}

	return created, nil
}

func (pr *policyRepository) GetByID(ctx context.Context, id string) (policy *models.Policy, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := pr.r.extractTxRead(ctx)

	policy, err = scanPolicy(db.QueryRowContext(ctx, queryPolicyGetByID, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get policy %s: %w", id, translateError(err))
	}

	return policy, nil
}

func (pr *policyRepository) GetByIDForUpdate(ctx context.Context, id string) (policy *models.Policy, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if !inTx(ctx) {
		return nil, errForUpdateOutsideTx
	}

	db := pr.r.extractTxWrite(ctx)

	policy, err = scanPolicy(db.QueryRowContext(ctx, queryPolicyGetByIDForUpdate, id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock policy %s: %w", id, translateError(err))
	}

	return policy, nil
}

func policyFilterQuery(filter models.PolicyFilter, b sq.SelectBuilder) sq.SelectBuilder {
	if filter.CustomerID != "" {
		b = b.Where(sq.Eq{"customer_id": filter.CustomerID})
	}
	if filter.Status != "" {
		b = b.Where(sq.Eq{"status": string(filter.Status)})
	}
	return b
}

func (pr *policyRepository) List(ctx context.Context, filter models.PolicyFilter) (policies []models.Policy, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := policyFilterQuery(filter, psql.Select(policyColumns...).From("policies")).
		OrderBy("created_at DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build policy list query: %w", err)
	}

	policies, err = pr.scanPolicies(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}

	return policies, nil
}

func (pr *policyRepository) Count(ctx context.Context, filter models.PolicyFilter) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := policyFilterQuery(filter, psql.Select("COUNT(*)").From("policies")).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build policy count query: %w", err)
	}

	db := pr.r.extractTxRead(ctx)
	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count policies: %w", err)
	}

	return total, nil
}

// ListByAnchorBefore pages through policies whose stored anchor is on or before until.
// A projected due date never precedes the anchor, so this bounds every due-soon lookup.
// until is compared by its calendar date, whatever its location.
func (pr *policyRepository) ListByAnchorBefore(ctx context.Context, statuses []models.PolicyStatus, until time.Time, page models.Pagination) (policies []models.Policy, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	status := make([]string, 0, len(statuses))
	for _, s := range statuses {
		status = append(status, string(s))
	}

	policies, err = pr.scanPolicies(ctx, queryPolicyListByAnchorBefore, pq.Array(status), models.FormatDate(until), page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies by anchor: %w", err)
	}

	return policies, nil
}

func (pr *policyRepository) UpdateAnchor(ctx context.Context, id string, anchor time.Time) (updated *models.Policy, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := pr.r.extractTxWrite(ctx)

	updated, err = scanPolicy(db.QueryRowContext(ctx, queryPolicyUpdateAnchor, id, anchor))
	if err != nil {
		return nil, fmt.Errorf("failed to update anchor of policy %s: %w", id, translateError(err))
	}

	return updated, nil
}

func (pr *policyRepository) CreatePolicyPayment(ctx context.Context, in *models.PolicyPayment) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := pr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryPolicyPaymentCreate,
		in.ID, in.PolicyID, in.PaidAnchor, in.NewAnchor, in.Amount, in.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create policy payment: %w", translateError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}
