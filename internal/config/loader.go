package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix      = "SHOPFIN"
	DefaultConfigFileName = "config"
)

type loaderOptions struct {
	envPrefix   string
	fileName    string
	searchPaths []string
}

type LoaderOption func(*loaderOptions)

func WithEnvPrefix(prefix string) LoaderOption {
	return func(o *loaderOptions) {
		o.envPrefix = prefix
	}
}

func WithConfigFileName(name string) LoaderOption {
	return func(o *loaderOptions) {
		o.fileName = name
	}
}

func WithConfigFileSearchPaths(paths ...string) LoaderOption {
	return func(o *loaderOptions) {
		o.searchPaths = append(o.searchPaths, paths...)
	}
}

// Load reads the config file (yaml, json or toml) found on the search paths and
// lets environment variables override any key, e.g. SHOPFIN_POSTGRES_WRITE_DB_HOST.
// A missing config file is not an error when the environment provides everything.
func Load(opts ...LoaderOption) (Config, error) {
	o := &loaderOptions{
		envPrefix: DefaultEnvPrefix,
		fileName:  DefaultConfigFileName,
	}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.searchPaths) == 0 {
		o.searchPaths = []string{".", "./config", "/config"}
	}

	v := viper.New()
	v.SetConfigName(o.fileName)
	for _, p := range o.searchPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	bindEnvs(v, reflect.TypeOf(cfg), "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "go-shop-finance")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http_port", 8080)
	v.SetDefault("app.http_timeout", "30s")
	v.SetDefault("app.graceful_timeout", "10s")
	v.SetDefault("app.log_option", "production")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.timezone", defaultTimezone)
	v.SetDefault("message_broker.http_port", 8081)
	v.SetDefault("idempotency.ttl", "24h")
	v.SetDefault("ledger.balance_epsilon", "0.01")
	v.SetDefault("ledger.max_records_per_kind", 5000)
	v.SetDefault("recurrence.max_projection_iterations", 120)
	v.SetDefault("recurrence.reminder_horizon_days", 3)
	v.SetDefault("recurrence.upcoming_horizon_days", 30)
	v.SetDefault("exponential_backoff.max_retries", 3)
	v.SetDefault("exponential_backoff.max_backoff_time", "5s")
	v.SetDefault("exponential_backoff.backoff_multiplier", 1.5)
	v.SetDefault("feature_flag_key_lookup.block_order_on_credit_limit", "shopfin.block_order_on_credit_limit")
	v.SetDefault("feature_flag_key_lookup.send_reminder_to_gateway", "shopfin.send_reminder_to_gateway")
	v.SetDefault("settlement_import.payment_method", "bank_transfer")
}

// bindEnvs registers every leaf key so AutomaticEnv can resolve keys that
// are absent from the config file.
func bindEnvs(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if f.Type.Kind() == reflect.Struct && f.Type.String() != "time.Time" {
			bindEnvs(v, f.Type, key)
			continue
		}
		_ = v.BindEnv(key)
	}
}
