package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/printhaus/go-shop-finance/internal/common/cache"
	"github.com/printhaus/go-shop-finance/internal/common/flag"
	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
	localstorage "github.com/printhaus/go-shop-finance/internal/common/local_storage"
	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/common/publisher"
	"github.com/printhaus/go-shop-finance/internal/common/remindergateway"
	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/repositories"
)

type service struct {
	srv *Services
}

// Publishers holds one publisher per event topic. Any of them may be nil
// in processes that do not emit that event.
type Publishers struct {
	Order      publisher.Publisher
	Payment    publisher.Publisher
	Adjustment publisher.Publisher
	Policy     publisher.Publisher
	Reminder   publisher.Publisher
}

// StagingStoreFactory opens the local store used while importing one settlement file.
type StagingStoreFactory func(bucket string) (localstorage.LocalStorage[models.SettlementRow], error)

type Services struct {
	conf config.Config

	sqlRepo      repositories.SQLRepository
	cacheRepo    repositories.CacheRepository
	cloudStorage repositories.CloudStorageRepository
	fileRepo     repositories.FileRepository

	publishers      Publishers
	reminderGateway remindergateway.Client
	idgenerator     idgenerator.Generator
	flag            flag.Client
	metrics         metrics.Metrics

	customerCache   cache.Client[models.Customer]
	newStagingStore StagingStoreFactory
	now             func() time.Time
	location        *time.Location
	ledgerOpts      []models.LedgerOption
	projectionOpts  []models.ProjectionOption

	common service

	Customer   *customer
	Ledger     *ledger
	Order      *order
	Payment    *payment
	Adjustment *adjustment
	Policy     *policy
	Statement  *statement
	Settlement *settlement
}

type Option func(*Services)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Services) {
		s.now = now
	}
}

func WithCustomerCache(c cache.Client[models.Customer]) Option {
	return func(s *Services) {
		s.customerCache = c
	}
}

func WithStagingStoreFactory(f StagingStoreFactory) Option {
	return func(s *Services) {
		s.newStagingStore = f
	}
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	cloudStorage repositories.CloudStorageRepository,
	fileRepo repositories.FileRepository,
	publishers Publishers,
	reminderGateway remindergateway.Client,
	idgenerator idgenerator.Generator,
	flag flag.Client,
	metrics metrics.Metrics,
	opts ...Option,
) *Services {
	srv := &Services{
		conf:            conf,
		sqlRepo:         sqlRepo,
		cacheRepo:       cacheRepo,
		cloudStorage:    cloudStorage,
		fileRepo:        fileRepo,
		publishers:      publishers,
		reminderGateway: reminderGateway,
		idgenerator:     idgenerator,
		flag:            flag,
		metrics:         metrics,
		now:             time.Now,
		location:        conf.App.Location(),
		ledgerOpts:      ledgerOptions(conf.Ledger),
		projectionOpts:  projectionOptions(conf.Recurrence),
	}
	for _, opt := range opts {
		opt(srv)
	}
	if srv.customerCache == nil {
		srv.customerCache = cache.NewInMemoryClient[models.Customer]()
	}
	if srv.newStagingStore == nil {
		srv.newStagingStore = func(bucket string) (localstorage.LocalStorage[models.SettlementRow], error) {
			return localstorage.NewBadgerStorage[models.SettlementRow](bucket)
		}
	}

	srv.common.srv = srv
	srv.Customer = (*customer)(&srv.common)
	srv.Ledger = (*ledger)(&srv.common)
	srv.Order = (*order)(&srv.common)
	srv.Payment = (*payment)(&srv.common)
	srv.Adjustment = (*adjustment)(&srv.common)
	srv.Policy = (*policy)(&srv.common)
	srv.Statement = (*statement)(&srv.common)
	srv.Settlement = (*settlement)(&srv.common)

	return srv
}

func ledgerOptions(cfg config.LedgerConfig) []models.LedgerOption {
	if cfg.BalanceEpsilon == "" {
		return nil
	}
	eps, err := decimal.NewFromString(cfg.BalanceEpsilon)
	if err != nil {
		return nil
	}
	return []models.LedgerOption{models.WithBalanceEpsilon(eps)}
}

func projectionOptions(cfg config.RecurrenceConfig) []models.ProjectionOption {
	if cfg.MaxProjectionIterations <= 0 {
		return nil
	}
	return []models.ProjectionOption{models.WithMaxIterations(cfg.MaxProjectionIterations)}
}

func (s *Services) ledgerMetrics() *metrics.LedgerPrometheusMetrics {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.GetLedgerPrometheus()
}
