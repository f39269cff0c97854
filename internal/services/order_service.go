package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

type OrderService interface {
	// Create runs the credit check before storing the order. Exceeding the
	// ceiling only warns unless blocking is switched on by feature flag.
	Create(ctx context.Context, in models.CreateOrderIn) (out *models.CreateOrderResult, err error)
}

type order service

var _ OrderService = (*order)(nil)

func (s *order) Create(ctx context.Context, in models.CreateOrderIn) (out *models.CreateOrderResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	c, err := s.srv.Customer.Get(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	check, err := s.srv.Ledger.evaluate(ctx, c, in.TotalValue)
	if err != nil {
		return nil, err
	}

	if check.Exceeds {
		blocked := s.srv.flag.IsEnabled(s.srv.conf.FeatureFlagKeyLookup.BlockOrderOnCreditLimit)
		s.srv.ledgerMetrics().RecordCreditWarning(blocked)
		xlog.Warn(ctx, logLedger,
			xlog.String("message", "order exceeds credit ceiling"),
			xlog.String("customerId", in.CustomerID),
			xlog.String("displayId", in.DisplayID),
			xlog.String("projectedBalance", check.ProjectedBalance.String()),
			xlog.Bool("blocked", blocked))

		if blocked {
			err = fmt.Errorf("%w: projected balance %s above ceiling %s",
				common.ErrCreditLimitExceeded, check.ProjectedBalance, check.CreditCeiling)
			return nil, err
		}
	}

	source := in.Source
	if source == "" {
		source = models.OrderSourceBackOffice
	}

	created, err := s.srv.sqlRepo.GetOrderRepository().Create(ctx, &models.Order{
		ID:         s.srv.idgenerator.Generate(idgenerator.PrefixOrder),
		CustomerID: in.CustomerID,
		DisplayID:  in.DisplayID,
		TotalValue: in.TotalValue,
		OrderDate:  in.OrderDate,
		Status:     models.OrderStatusPlaced,
		Source:     source,
	})
	if err != nil {
		if errors.Is(err, common.ErrDataExist) {
			err = fmt.Errorf("%w: %s", common.ErrOrderAlreadyExists, in.DisplayID)
			return nil, err
		}
		err = checkWriteError(err, models.ErrKeyOrderAlreadyExists)
		return nil, err
	}

	publishEvent(ctx, s.srv.publishers.Order, models.EventTypeOrderCreated, created.CustomerID, models.OrderCreatedEvent{
		OrderID:       created.ID,
		CustomerID:    created.CustomerID,
		DisplayID:     created.DisplayID,
		TotalValue:    models.NewDecimalFromExternal(created.TotalValue),
		OrderDate:     models.FormatDate(created.OrderDate),
		Source:        created.Source,
		CreditExceeds: check.Exceeds,
		CreatedAt:     created.CreatedAt,
	})

	return &models.CreateOrderResult{Order: *created, CreditCheck: check}, nil
}
