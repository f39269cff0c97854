package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PublisherPrometheusMetrics covers the domain event and dead letter publishers.
type PublisherPrometheusMetrics struct {
	publishDuration *prometheus.HistogramVec
	publishFailures *prometheus.CounterVec
}

func newPublisherPrometheusMetrics(reg prometheus.Registerer) *PublisherPrometheusMetrics {
	m := &PublisherPrometheusMetrics{
		publishDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shopfin_kafka_publish_duration_seconds",
				Help:    "Time spent handing one event to the kafka producer.",
				Buckets: []float64{0.001, 0.005, 0.010, 0.050, 0.100, 0.250, 0.500, 1, 2, 5},
			},
			[]string{"topic", "result"},
		),
		publishFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopfin_kafka_publish_failures_total",
				Help: "Events that could not be published, by topic.",
			},
			[]string{"topic"},
		),
	}

	reg.MustRegister(m.publishDuration, m.publishFailures)

	return m
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Observe records one publish attempt that started at startTime.
func (m *PublisherPrometheusMetrics) Observe(startTime time.Time, topic string, err error) {
	if m == nil {
		return
	}
	m.publishDuration.WithLabelValues(topic, resultLabel(err)).Observe(time.Since(startTime).Seconds())
	if err != nil {
		m.publishFailures.WithLabelValues(topic).Inc()
	}
}
