package flag

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Unleash/unleash-client-go/v3"
	"github.com/Unleash/unleash-client-go/v3/api"

	"github.com/printhaus/go-shop-finance/internal/config"
)

var ErrVariantNotFound = errors.New("variant not found")

// Job carries the command line flags of one worker run.
type Job struct {
	JobName string
	Version string
	Date    string
}

type Client interface {
	IsEnabled(key string) bool
	GetVariant(key string) *api.Variant
	Close() error
}

type Variant[T any] struct {
	Enabled bool
	Value   T
}

type unleashClient struct {
	client *unleash.Client
}

// New connects to Unleash and blocks until the first toggle fetch completes.
// Without a configured URL a static client with every flag off is returned.
func New(cfg *config.Config) (Client, error) {
	if cfg.FeatureFlagSDKConfig.URL == "" {
		return NewStatic(nil), nil
	}

	c, err := unleash.NewClient(
		unleash.WithAppName(cfg.App.Name),
		unleash.WithUrl(cfg.FeatureFlagSDKConfig.URL),
		unleash.WithEnvironment(cfg.FeatureFlagSDKConfig.Env),
		unleash.WithRefreshInterval(cfg.FeatureFlagSDKConfig.RefreshInterval),
		unleash.WithCustomHeaders(http.Header{"Authorization": {cfg.FeatureFlagSDKConfig.Token}}),
		unleash.WithHttpClient(http.DefaultClient),
		unleash.WithListener(&unleash.DebugListener{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create unleash client: %w", err)
	}
	c.WaitForReady()

	return &unleashClient{client: c}, nil
}

func (u *unleashClient) IsEnabled(key string) bool {
	return u.client.IsEnabled(key)
}

func (u *unleashClient) GetVariant(key string) *api.Variant {
	return u.client.GetVariant(key)
}

func (u *unleashClient) Close() error {
	return u.client.Close()
}

type staticClient struct {
	flags map[string]bool
}

// NewStatic serves fixed toggles, for local runs and tests.
func NewStatic(flags map[string]bool) Client {
	if flags == nil {
		flags = map[string]bool{}
	}
	return &staticClient{flags: flags}
}

func (s *staticClient) IsEnabled(key string) bool {
	return s.flags[key]
}

func (s *staticClient) GetVariant(key string) *api.Variant {
	return &api.Variant{Name: "disabled", Enabled: s.flags[key]}
}

func (s *staticClient) Close() error {
	return nil
}

// GetVariant decodes the JSON payload of the variant for key.
// It is a function because methods cannot take type parameters.
func GetVariant[T any](c Client, key string) (*Variant[T], error) {
	variant := c.GetVariant(key)
	if variant == nil {
		return nil, fmt.Errorf("%w: variant for key %s not found", ErrVariantNotFound, key)
	}

	var res T
	if !variant.Enabled || variant.Payload.Value == "" {
		return &Variant[T]{Enabled: variant.Enabled, Value: res}, nil
	}

	if err := json.Unmarshal([]byte(variant.Payload.Value), &res); err != nil {
		return nil, fmt.Errorf("unmarshal variant for key %s failed: %w", key, err)
	}

	return &Variant[T]{Enabled: variant.Enabled, Value: res}, nil
}
