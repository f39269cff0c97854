package repositories

import (
	"context"
	"database/sql"

	"github.com/printhaus/go-shop-finance/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	cr  *customerRepository
	or  *orderRepository
	pr  *paymentRepository
	ar  *adjustmentRepository
	plr *policyRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.cr = (*customerRepository)(&rtx.common)
	rtx.or = (*orderRepository)(&rtx.common)
	rtx.pr = (*paymentRepository)(&rtx.common)
	rtx.ar = (*adjustmentRepository)(&rtx.common)
	rtx.plr = (*policyRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetCustomerRepository() CustomerRepository
	GetOrderRepository() OrderRepository
	GetPaymentRepository() PaymentRepository
	GetAdjustmentRepository() AdjustmentRepository
	GetPolicyRepository() PolicyRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) GetCustomerRepository() CustomerRepository {
	return r.cr
}

func (r *Repository) GetOrderRepository() OrderRepository {
	return r.or
}

func (r *Repository) GetPaymentRepository() PaymentRepository {
	return r.pr
}

func (r *Repository) GetAdjustmentRepository() AdjustmentRepository {
	return r.ar
}

func (r *Repository) GetPolicyRepository() PolicyRepository {
	return r.plr
}

const defaultMaxRecordsPerKind uint64 = 10000

func (r *Repository) recordLimit(limit uint64) uint64 {
	if limit > 0 {
		return limit
	}
	if r.config.Ledger.MaxRecordsPerKind > 0 {
		return r.config.Ledger.MaxRecordsPerKind
	}
	return defaultMaxRecordsPerKind
}
