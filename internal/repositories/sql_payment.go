package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

type PaymentRepository interface {
	Create(ctx context.Context, in *models.Payment) (created *models.Payment, err error)
	ListByCustomer(ctx context.Context, customerID string, limit uint64) (payments []models.Payment, err error)
	ExistsByReference(ctx context.Context, reference string) (exists bool, err error)
}

type paymentRepository sqlRepo

var _ PaymentRepository = (*paymentRepository)(nil)

func scanPayment(row rowScanner) (*models.Payment, error) {
	var (
		p         models.Payment
		paidAt    sql.NullTime
		reference sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.CustomerID,
		&p.Amount,
		&paidAt,
		&p.Method,
		&p.Notes,
		&reference,
		&p.Source,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PaidAt = timeOrZero(paidAt)
	p.Reference = reference.String

	return &p, nil
}

func (pr *paymentRepository) Create(ctx context.Context, in *models.Payment) (created *models.Payment, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := pr.r.extractTxWrite(ctx)

	created, err = scanPayment(db.QueryRowContext(ctx, queryPaymentCreate,
		in.ID, in.CustomerID, in.Amount, nullTime(in.PaidAt), in.Method, in.Notes, nullString(in.Reference), in.Source,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", translateError(err))
	}

	return created, nil
}

func (pr *paymentRepository) ListByCustomer(ctx context.Context, customerID string, limit uint64) (payments []models.Payment, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := pr.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, queryPaymentListByCustomer, customerID, pr.r.recordLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p *models.Payment
		if p, err = scanPayment(rows); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, *p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// ExistsByReference reports whether a payment with the settlement reference was already recorded.
func (pr *paymentRepository) ExistsByReference(ctx context.Context, reference string) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := pr.r.extractTxRead(ctx)
	if err = db.QueryRowContext(ctx, queryPaymentExistsByReference, reference).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payment reference: %w", err)
	}

	return exists, nil
}
