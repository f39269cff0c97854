package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

type CustomerRepository interface {
	Create(ctx context.Context, in *models.Customer) (created *models.Customer, err error)
	GetByID(ctx context.Context, id string) (customer *models.Customer, err error)
	List(ctx context.Context, filter models.CustomerFilter) (customers []models.Customer, err error)
	Count(ctx context.Context, filter models.CustomerFilter) (total int, err error)
	UpdateCreditCeiling(ctx context.Context, id string, ceiling decimal.NullDecimal) (updated *models.Customer, err error)
	ListIDsWithActivity(ctx context.Context, page models.Pagination) (ids []string, err error)
}

type customerRepository sqlRepo

var _ CustomerRepository = (*customerRepository)(nil)

func scanCustomer(row rowScanner) (*models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.CreditCeiling,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (cr *customerRepository) Create(ctx context.Context, in *models.Customer) (created *models.Customer, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxWrite(ctx)

	created, err = scanCustomer(db.QueryRowContext(ctx, queryCustomerCreate,
		in.ID, in.Name, in.Phone, in.Email, in.CreditCeiling,
	))
	if err != nil {
		err = fmt.Errorf("failed to create customer: %w", translateError(err))
		return nil, err
	}

	return created, nil
}

// GetByID returns common.ErrNoRows when the customer does not exist.
func (cr *customerRepository) GetByID(ctx context.Context, id string) (customer *models.Customer, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxRead(ctx)

	customer, err = scanCustomer(db.QueryRowContext(ctx, queryCustomerGetByID, id))
	if err != nil {
		err = fmt.Errorf("failed to get customer %s: %w", id, translateError(err))
		return nil, err
	}

	return customer, nil
}

func customerFilterQuery(filter models.CustomerFilter, b sq.SelectBuilder) sq.SelectBuilder {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"phone": pattern},
		})
	}
	return b
}

func (cr *customerRepository) List(ctx context.Context, filter models.CustomerFilter) (customers []models.Customer, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := customerFilterQuery(filter, psql.Select(customerColumns...).From("customers")).
		OrderBy("created_at DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build customer list query: %w", err)
	}

	db := cr.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c *models.Customer
		c, err = scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func (cr *customerRepository) Count(ctx context.Context, filter models.CustomerFilter) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := customerFilterQuery(filter, psql.Select("COUNT(*)").From("customers")).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build customer count query: %w", err)
	}

	db := cr.r.extractTxRead(ctx)
	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return total, nil
}

func (cr *customerRepository) UpdateCreditCeiling(ctx context.Context, id string, ceiling decimal.NullDecimal) (updated *models.Customer, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxWrite(ctx)

	updated, err = scanCustomer(db.QueryRowContext(ctx, queryCustomerUpdateCreditCeiling, id, ceiling))
	if err != nil {
		err = fmt.Errorf("failed to update credit ceiling of %s: %w", id, translateError(err))
		return nil, err
	}

	return updated, nil
}

// ListIDsWithActivity pages through customers that have at least one order, payment or adjustment.
func (cr *customerRepository) ListIDsWithActivity(ctx context.Context, page models.Pagination) (ids []string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, queryCustomerListIDsWithActivity, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list active customers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan customer id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
