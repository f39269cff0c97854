package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

// NewRestyClient builds a client that retries on models.IsRetryableHTTPCode and reports every call as a newrelic external segment.
func NewRestyClient(cfg config.HTTPConfiguration) *resty.Client {
	client := resty.New().
		SetTransport(monitoring.NewMiddlewareRoundTripper(http.DefaultTransport)).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil {
				return false
			}
			return models.IsRetryableHTTPCode(r.StatusCode())
		}).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(time.Duration(cfg.RetryWaitTime) * time.Millisecond)

	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return client
}

type RequestWrapper struct {
	client      *resty.Client
	metrics     metrics.Metrics
	serviceName string
	logPrefix   string
}

func NewRequestWrapper(client *resty.Client, metrics metrics.Metrics, serviceName, logPrefix string) *RequestWrapper {
	return &RequestWrapper{
		client:      client,
		metrics:     metrics,
		serviceName: serviceName,
		logPrefix:   logPrefix,
	}
}

// DoRequest sends one request and records its duration. endpoint is the route
// template used as metric label; url is the concrete address.
func (w *RequestWrapper) DoRequest(ctx context.Context, method, endpoint, url string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	startTime := time.Now()

	logFields := []xlog.Field{
		xlog.String("url", url),
		xlog.String("method", method),
	}

	xlog.Info(ctx, w.logPrefix, append(logFields, xlog.String("message", "send request"))...)

	req := w.client.R().SetContext(ctx)
	if reqFunc != nil {
		req = reqFunc(req)
	}

	var httpRes *resty.Response
	var err error

	switch method {
	case http.MethodGet:
		httpRes, err = req.Get(url)
	case http.MethodPost:
		httpRes, err = req.Post(url)
	case http.MethodPut:
		httpRes, err = req.Put(url)
	case http.MethodDelete:
		httpRes, err = req.Delete(url)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if err != nil {
		if w.metrics != nil {
			w.metrics.GetHTTPClientPrometheus().RecordFailure(w.serviceName, endpoint)
		}
		xlog.Warn(ctx, w.logPrefix, append(logFields, xlog.Err(err))...)
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	if w.metrics != nil {
		w.metrics.GetHTTPClientPrometheus().Record(
			time.Since(startTime),
			w.serviceName,
			method,
			endpoint,
			httpRes.StatusCode(),
		)
	}

	logFields = append(logFields,
		xlog.String("httpStatusCode", httpRes.Status()),
		xlog.String("httpResponse", string(httpRes.Body())),
	)

	if httpRes.IsError() {
		xlog.Warn(ctx, w.logPrefix, logFields...)
	} else {
		xlog.Info(ctx, w.logPrefix, logFields...)
	}

	return httpRes, nil
}
