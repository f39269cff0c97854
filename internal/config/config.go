package config

import (
	"time"
)

const defaultTimezone = "Asia/Jakarta"

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Postgres `json:"postgres"`
		Redis              Redis    `json:"redis"`
		GcloudProjectID    string   `json:"gcloud_project_id"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		MessageBroker        MessageBroker            `json:"message_broker"`
		CloudStorageConfig   CloudStorageConfig       `json:"cloud_storage"`
		ExponentialBackoff   ExponentialBackOffConfig `json:"exponential_backoff"`
		Idempotency          IdempotencyConfig        `json:"idempotency"`
		Ledger               LedgerConfig             `json:"ledger"`
		Recurrence           RecurrenceConfig         `json:"recurrence"`
		ReminderGateway      HTTPConfiguration        `json:"reminder_gateway"`
		SettlementImport     SettlementImportConfig   `json:"settlement_import"`
		FeatureFlagSDKConfig FeatureFlagSDKConfig     `json:"feature_flag_sdk"`
		FeatureFlagKeyLookup FeatureFlagKeyLookup     `json:"feature_flag_key_lookup"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
		SecretKey       string        `json:"secret_key"`
		Timezone        string        `json:"timezone"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"max_open_connections"`
		MaxIdleConnection int    `json:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	MessageBroker struct {
		// HTTPPort serves health and metrics of the consumer process.
		HTTPPort      int            `json:"http_port"`
		KafkaConsumer ConsumerConfig `json:"kafka_consumer"`
	}

	ConsumerConfig struct {
		Brokers                        []string      `json:"brokers"`
		ConsumerGroupStorefrontOrder   string        `json:"consumer_group_storefront_order"`
		TopicStorefrontOrder           string        `json:"topic_storefront_order"`
		TopicStorefrontOrderDLQ        string        `json:"topic_storefront_order_dlq"`
		TopicOrderEvents               string        `json:"topic_order_events"`
		TopicPaymentEvents             string        `json:"topic_payment_events"`
		TopicAdjustmentEvents          string        `json:"topic_adjustment_events"`
		TopicPolicyEvents              string        `json:"topic_policy_events"`
		TopicPolicyReminders           string        `json:"topic_policy_reminders"`
		Assignor                       string        `json:"assignor"`
		IsOldest                       bool          `json:"is_oldest"`
		IsVerbose                      bool          `json:"is_verbose"`
		HandlerTimeoutStorefrontOrders time.Duration `json:"handler_timeout_storefront_orders"`
	}

	CloudStorageConfig struct {
		BaseURL         string `json:"base_url"`
		BucketName      string `json:"bucket_name"`
		StatementPath   string `json:"statement_path"`
		SettlementPath  string `json:"settlement_path"`
		SignedURLExpiry int    `json:"signed_url_expiry"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}

	IdempotencyConfig struct {
		TTL time.Duration `json:"ttl"`
	}

	LedgerConfig struct {
		// BalanceEpsilon is the band around zero treated as a settled balance.
		BalanceEpsilon string `json:"balance_epsilon"`
		// MaxRecordsPerKind caps each of the three record fetches for one customer.
		// A customer past it gets ledger_too_large instead of a partial ledger.
		MaxRecordsPerKind uint64 `json:"max_records_per_kind"`
	}

	RecurrenceConfig struct {
		MaxProjectionIterations int `json:"max_projection_iterations"`
		ReminderHorizonDays     int `json:"reminder_horizon_days"`
		UpcomingHorizonDays     int `json:"upcoming_horizon_days"`
	}

	HTTPConfiguration struct {
		BaseURL       string        `json:"base_url"`
		SecretKey     string        `json:"secret_key"`
		RetryCount    int           `json:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout"`
	}

	SettlementImportConfig struct {
		// PaymentMethod is stored on every payment created from a settlement file.
		PaymentMethod string `json:"payment_method"`
	}

	FeatureFlagSDKConfig struct {
		URL             string        `json:"url"`
		Token           string        `json:"token"`
		Env             string        `json:"env"`
		RefreshInterval time.Duration `json:"refresh_interval"`
	}

	FeatureFlagKeyLookup struct {
		BlockOrderOnCreditLimit string `json:"block_order_on_credit_limit"`
		SendReminderToGateway   string `json:"send_reminder_to_gateway"`
	}
)

// Location is the shop's business timezone. Dates without a time part are read in it.
func (a App) Location() *time.Location {
	name := a.Timezone
	if name == "" {
		name = defaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
