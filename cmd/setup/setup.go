package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/Shopify/sarama"
	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/printhaus/go-shop-finance/internal/common/cache"
	dlqpublisher "github.com/printhaus/go-shop-finance/internal/common/dlq_publisher"
	"github.com/printhaus/go-shop-finance/internal/common/flag"
	"github.com/printhaus/go-shop-finance/internal/common/graceful"
	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
	cMetrics "github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/common/publisher"
	"github.com/printhaus/go-shop-finance/internal/common/remindergateway"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/repositories"
	"github.com/printhaus/go-shop-finance/internal/services"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

const customerCachePrefix = "shopfin:customer"

type Setup struct {
	Config           config.Config
	NewRelic         *newrelic.Application
	WriteDB          *sql.DB
	ReadDB           *sql.DB
	Cache            *redis.Client
	RepoCache        repositories.CacheRepository
	RepoCloudStorage repositories.CloudStorageRepository
	Service          *services.Services
	PublisherClient  *PublisherClient
	Metrics          cMetrics.Metrics
}

// Init loads config and connects every backing service the given command needs.
// On error the returned stoppers release whatever was already opened.
func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	// debug logs stay on developer machines
	logLevel := cfg.App.LogLevel
	if logLevel == "debug" && !cfg.App.Environment().IsLocal() {
		logLevel = "info"
	}

	err = xlog.Init(
		xlog.WithServiceName(cfg.App.Name+"-"+command),
		xlog.WithLogMode(cfg.App.LogOption),
		xlog.WithEnv(cfg.App.Env),
		xlog.WithLogLevel(logLevel),
	)
	if err != nil {
		err = fmt.Errorf("failed to init logger: %w", err)
		return
	}

	stopper = append(stopper, func(ctx context.Context) error {
		_ = xlog.Sync()
		return nil
	})

	if cfg.GcloudProjectID == "" && metadata.OnGCE() {
		projectID, errProject := metadata.ProjectIDWithContext(ctx)
		if errProject == nil {
			cfg.GcloudProjectID = projectID
		}
	}
	if cfg.GcloudProjectID == "" {
		xlog.Info(ctx, "can not determine google cloud project, for local use set the gcloud_project_id in config yaml")
	}

	newRelic := setupNR(ctx, cfg)
	if newRelic != nil {
		stopper = append(stopper, func(ctx context.Context) error {
			newRelic.Shutdown(cfg.App.GracefulTimeout)
			return nil
		})
	}

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = rdb.Ping(ctx).Result()
	if err != nil {
		err = fmt.Errorf("failed connect to redis: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return rdb.Close() })

	flagClient, err := flag.New(&cfg)
	if err != nil {
		err = fmt.Errorf("failed to create flag client: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return flagClient.Close() })

	// register DB write stat prometheus metrics
	err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	// register DB read stat prometheus metrics
	err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	// register redis prometheus metrics
	err = mtc.RegisterRedis(rdb, cfg.App.Name, command)
	if err != nil {
		err = fmt.Errorf("failed register redis prometheus: %w", err)
		return
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(rdb)
	fileRepo := repositories.NewFileRepository()

	cloudStorageRepo, err := repositories.NewCloudStorageRepository(&cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to cloud storage: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cloudStorageRepo.Close() })

	producer, err := publisher.NewKafkaSyncProducer(
		cfg.MessageBroker.KafkaConsumer.Brokers,
		publisher.WithClientID(cfg.App.Name+"-"+command),
		publisher.WithMetricRegistry(mtc.SaramaRegistry(command+"_producer", time.Second)),
	)
	if err != nil {
		err = fmt.Errorf("unable to create client kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

	// events of one customer keep their order on one partition
	customerProducer, err := publisher.NewKafkaSyncProducer(
		cfg.MessageBroker.KafkaConsumer.Brokers,
		publisher.WithClientID(cfg.App.Name+"-"+command+"-customer"),
		publisher.WithCustomHasher(fnv.New32a),
	)
	if err != nil {
		err = fmt.Errorf("unable to create client kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return customerProducer.Close() })

	publisherClient := newPublisherClient(cfg, producer, customerProducer, mtc)

	reminderGateway := remindergateway.New(cfg.ReminderGateway, mtc)

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		cloudStorageRepo,
		fileRepo,
		publisherClient.Events,
		reminderGateway,
		idgenerator.New(),
		flagClient,
		mtc,
		services.WithCustomerCache(cache.NewRedisClient[models.Customer](rdb, customerCachePrefix)),
	)

	return &Setup{
		Config:           cfg,
		NewRelic:         newRelic,
		WriteDB:          writeDB,
		ReadDB:           readDB,
		Cache:            rdb,
		Service:          srv,
		RepoCache:        cacheRepo,
		RepoCloudStorage: cloudStorageRepo,
		PublisherClient:  publisherClient,
		Metrics:          mtc,
	}, stopper, nil
}

func newPublisherClient(cfg config.Config, producer, customerProducer sarama.SyncProducer, mtc cMetrics.Metrics) *PublisherClient {
	topics := cfg.MessageBroker.KafkaConsumer

	return &PublisherClient{
		Events: services.Publishers{
			Order:      publisher.NewPublisher(customerProducer, topics.TopicOrderEvents, mtc),
			Payment:    publisher.NewPublisher(customerProducer, topics.TopicPaymentEvents, mtc),
			Adjustment: publisher.NewPublisher(customerProducer, topics.TopicAdjustmentEvents, mtc),
			Policy:     publisher.NewPublisher(producer, topics.TopicPolicyEvents, mtc),
			Reminder:   publisher.NewPublisher(producer, topics.TopicPolicyReminders, mtc),
		},
		StorefrontOrder: dlqpublisher.New(producer, topics.TopicStorefrontOrderDLQ, mtc),
	}
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		_ = writeDB.Close()
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if !cfg.App.Environment().IsProduction() {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(xlog.L())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); err != nil {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}

	return app
}
