package ctxdata

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	HeaderCorrelationID  = "X-Correlation-Id"
	HeaderRequestID      = "X-Request-Id"
	HeaderIdempotencyKey = "X-Idempotency-Key"
)

type ctxKey struct{}

// Data is the request scoped metadata attached to every log line.
type Data struct {
	CorrelationID  string
	IdempotencyKey string
	Source         string
}

type Option func(*Data)

func WithCorrelationID(id string) Option {
	return func(d *Data) {
		d.CorrelationID = id
	}
}

func WithIdempotencyKey(key string) Option {
	return func(d *Data) {
		d.IdempotencyKey = key
	}
}

func WithSource(source string) Option {
	return func(d *Data) {
		d.Source = source
	}
}

// Sets returns a copy of ctx carrying Data built from opts on top of the existing one.
func Sets(ctx context.Context, opts ...Option) context.Context {
	d := Get(ctx)
	for _, opt := range opts {
		opt(&d)
	}
	if d.CorrelationID == "" {
		d.CorrelationID = uuid.NewString()
	}

	return context.WithValue(ctx, ctxKey{}, d)
}

func Get(ctx context.Context) Data {
	if ctx == nil {
		return Data{}
	}
	if d, ok := ctx.Value(ctxKey{}).(Data); ok {
		return d
	}

	return Data{}
}

func GetCorrelationId(ctx context.Context) string {
	return Get(ctx).CorrelationID
}

// SetContextFromHTTP picks the correlation id from the incoming headers,
// falling back to the request id set by the router.
func SetContextFromHTTP(ctx context.Context, req *http.Request) context.Context {
	correlationID := req.Header.Get(HeaderCorrelationID)
	if correlationID == "" {
		correlationID = req.Header.Get(HeaderRequestID)
	}

	return Sets(ctx,
		WithCorrelationID(correlationID),
		WithIdempotencyKey(req.Header.Get(HeaderIdempotencyKey)),
		WithSource("http"),
	)
}
