package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/printhaus/go-shop-finance/internal/common/cache"
	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

const customerCacheTTL = time.Minute

type CustomerService interface {
	Create(ctx context.Context, req models.CreateCustomerRequest) (out *models.Customer, err error)
	Get(ctx context.Context, id string) (out *models.Customer, err error)
	List(ctx context.Context, filter models.CustomerFilter) (out []models.Customer, total int, err error)
	// UpdateCreditCeiling sets the ceiling; nil or zero turns credit checking off.
	UpdateCreditCeiling(ctx context.Context, id string, ceiling *decimal.Decimal) (out *models.Customer, err error)
}

type customer service

var _ CustomerService = (*customer)(nil)

func customerCacheKey(id string) string {
	return "customer:" + id
}

func (s *customer) Create(ctx context.Context, req models.CreateCustomerRequest) (out *models.Customer, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	in := &models.Customer{
		ID:    s.srv.idgenerator.Generate(idgenerator.PrefixCustomer),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if req.CreditCeiling != nil {
		in.CreditCeiling = decimal.NewNullDecimal(req.CreditCeiling.Decimal)
	}

	out, err = s.srv.sqlRepo.GetCustomerRepository().Create(ctx, in)
	if err != nil {
		err = checkWriteError(err, models.ErrKeyDataIsExist)
		return nil, err
	}

	return out, nil
}

// Get reads through the in-memory cache. Ledger and credit checks call it on
// every request, so a short TTL keeps the database off the hot path.
func (s *customer) Get(ctx context.Context, id string) (out *models.Customer, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	c, err := s.srv.customerCache.GetOrSet(ctx, cache.GetOrSetOpts[models.Customer]{
		Key: customerCacheKey(id),
		TTL: customerCacheTTL,
		Callback: func() (models.Customer, error) {
			found, err := s.srv.sqlRepo.GetCustomerRepository().GetByID(ctx, id)
			if err != nil {
				return models.Customer{}, err
			}
			return *found, nil
		},
	})
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyCustomerNotFound)
		return nil, err
	}

	return &c, nil
}

func (s *customer) List(ctx context.Context, filter models.CustomerFilter) (out []models.Customer, total int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	repo := s.srv.sqlRepo.GetCustomerRepository()

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

func (s *customer) UpdateCreditCeiling(ctx context.Context, id string, ceiling *decimal.Decimal) (out *models.Customer, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	value := decimal.NullDecimal{}
	if ceiling != nil && ceiling.IsPositive() {
		value = decimal.NewNullDecimal(*ceiling)
	}

	out, err = s.srv.sqlRepo.GetCustomerRepository().UpdateCreditCeiling(ctx, id, value)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyCustomerNotFound)
		return nil, err
	}

	if errDel := s.srv.customerCache.Delete(ctx, customerCacheKey(id)); errDel != nil && !errors.Is(errDel, cache.ErrNotExists) {
		xlog.Warn(ctx, "[CUSTOMER-CACHE]", xlog.String("customerId", id), xlog.Err(errDel))
	}

	return out, nil
}
