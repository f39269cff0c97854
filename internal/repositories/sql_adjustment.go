package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

type AdjustmentRepository interface {
	Create(ctx context.Context, in *models.Adjustment) (created *models.Adjustment, err error)
	ListByCustomer(ctx context.Context, customerID string, limit uint64) (adjustments []models.Adjustment, err error)
}

type adjustmentRepository sqlRepo

var _ AdjustmentRepository = (*adjustmentRepository)(nil)

func scanAdjustment(row rowScanner) (*models.Adjustment, error) {
	var (
		a          models.Adjustment
		adjustedAt sql.NullTime
		typ        string
	)
	err := row.Scan(
		&a.ID,
		&a.CustomerID,
		&a.Amount,
		&typ,
		&adjustedAt,
		&a.Remarks,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	// unknown types are kept as stored; the normalizer drops them
	a.Type = models.AdjustmentType(typ)
	a.AdjustedAt = timeOrZero(adjustedAt)

	return &a, nil
}

func (ar *adjustmentRepository) Create(ctx context.Context, in *models.Adjustment) (created *models.Adjustment, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxWrite(ctx)

	created, err = scanAdjustment(db.QueryRowContext(ctx, queryAdjustmentCreate,
		in.ID, in.CustomerID, in.Amount, string(in.Type), nullTime(in.AdjustedAt), in.Remarks,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create adjustment: %w", translateError(err))
	}

	return created, nil
}

func (ar *adjustmentRepository) ListByCustomer(ctx context.Context, customerID string, limit uint64) (adjustments []models.Adjustment, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, queryAdjustmentListByCustomer, customerID, ar.r.recordLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a *models.Adjustment
		if a, err = scanAdjustment(rows); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, *a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return adjustments, nil
}
