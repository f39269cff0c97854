package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

type OrderRepository interface {
	Create(ctx context.Context, in *models.Order) (created *models.Order, err error)
	ListByCustomer(ctx context.Context, customerID string, limit uint64) (orders []models.Order, err error)
}

type orderRepository sqlRepo

var _ OrderRepository = (*orderRepository)(nil)

func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		o         models.Order
		orderDate sql.NullTime
	)
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.DisplayID,
		&o.TotalValue,
		&orderDate,
		&o.Status,
		&o.Source,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.OrderDate = timeOrZero(orderDate)

	return &o, nil
}

func (or *orderRepository) Create(ctx context.Context, in *models.Order) (created *models.Order, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := or.r.extractTxWrite(ctx)

	created, err = scanOrder(db.QueryRowContext(ctx, queryOrderCreate,
		in.ID, in.CustomerID, in.DisplayID, in.TotalValue, nullTime(in.OrderDate), in.Status, in.Source,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", translateError(err))
	}

	return created, nil
}

// ListByCustomer returns at most limit orders, oldest first. A zero limit uses the configured cap.
func (or *orderRepository) ListByCustomer(ctx context.Context, customerID string, limit uint64) (orders []models.Order, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := or.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, queryOrderListByCustomer, customerID, or.r.recordLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var o *models.Order
		if o, err = scanOrder(rows); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
