package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPClientPrometheusMetrics covers outgoing calls, e.g. to the reminder gateway.
type HTTPClientPrometheusMetrics struct {
	requestDuration   *prometheus.HistogramVec
	transportFailures *prometheus.CounterVec
}

func newHTTPClientPrometheusMetrics(reg prometheus.Registerer) *HTTPClientPrometheusMetrics {
	m := &HTTPClientPrometheusMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shopfin_external_request_duration_seconds",
				Help:    "Duration of answered requests to external services.",
				Buckets: []float64{0.005, 0.010, 0.050, 0.100, 0.200, 0.500, 1, 2, 5, 10},
			},
			[]string{"service", "method", "endpoint", "response_code"},
		),
		transportFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopfin_external_request_failures_total",
				Help: "Requests to external services that got no response at all.",
			},
			[]string{"service", "endpoint"},
		),
	}

	reg.MustRegister(m.requestDuration, m.transportFailures)

	return m
}

// Record observes one answered request. endpoint should be a route template, not a
// raw url, to keep label cardinality bounded.
func (m *HTTPClientPrometheusMetrics) Record(duration time.Duration, service, method, endpoint string, statusCode int) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(service, method, endpoint, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

// RecordFailure counts a request that ended in a transport error or timeout.
func (m *HTTPClientPrometheusMetrics) RecordFailure(service, endpoint string) {
	if m == nil {
		return
	}
	m.transportFailures.WithLabelValues(service, endpoint).Inc()
}
