package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	// Retry keeps calling operation until it succeeds, returns a permanent error,
	// or the retry budget runs out. In the last two cases onExhausted is called and
	// its error is returned.
	Retry(ctx context.Context, operation, onExhausted func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	cfg config.ExponentialBackOffConfig
}

func NewExponentialBackOff(cfg config.ExponentialBackOffConfig) Retryer {
	if cfg.MaxBackoffTime <= 0 {
		cfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}
	if cfg.BackoffMultiplier <= 0 {
		cfg.BackoffMultiplier = backoff.DefaultMultiplier
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{cfg: cfg}
}

func (r *exponentialBackoff) Retry(ctx context.Context, operation, onExhausted func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.cfg.MaxBackoffTime
	eb.Multiplier = r.cfg.BackoffMultiplier

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		return operation()
	}, backoff.WithContext(backoff.WithMaxRetries(eb, r.cfg.MaxRetries), ctx))
	if err == nil {
		return nil
	}

	xlog.Warn(ctx, "[RETRY] giving up", xlog.Int("attempts", attempt), xlog.Err(err))
	if onExhausted == nil {
		return err
	}

	return onExhausted()
}

// StopRetryWithErr marks err as permanent. Call it inside operation.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
