package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhaus/go-shop-finance/internal/common/httpclient"
	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	m.Run()
}

func TestRequestWrapper_DoRequest(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		switch r.URL.Path {
		case "/flaky":
			if n == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		case "/echo":
			body, _ := io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write(body)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	mtc := metrics.NewWithRegisterer(reg)
	client := httpclient.NewRestyClient(config.HTTPConfiguration{RetryCount: 2, RetryWaitTime: 1})
	wrapper := httpclient.NewRequestWrapper(client, mtc, "test-service", "[TEST]")

	t.Run("post body", func(t *testing.T) {
		res, err := wrapper.DoRequest(context.Background(), http.MethodPost, "/echo", srv.URL+"/echo", func(r *resty.Request) *resty.Request {
			return r.SetBody(`{"policyId":"POL-1"}`)
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, res.StatusCode())
		assert.JSONEq(t, `{"policyId":"POL-1"}`, string(res.Body()))
	})

	t.Run("retries on service unavailable", func(t *testing.T) {
		atomic.StoreInt32(&calls, 0)
		res, err := wrapper.DoRequest(context.Background(), http.MethodGet, "/flaky", srv.URL+"/flaky", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode())
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("client error is returned as response", func(t *testing.T) {
		res, err := wrapper.DoRequest(context.Background(), http.MethodPut, "/other", srv.URL+"/other", nil)
		require.NoError(t, err)
		assert.True(t, res.IsError())
	})

	t.Run("unsupported method", func(t *testing.T) {
		_, err := wrapper.DoRequest(context.Background(), http.MethodPatch, "/echo", srv.URL+"/echo", nil)
		assert.Error(t, err)
	})

	count, err := testutil.GatherAndCount(reg, "shopfin_external_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
