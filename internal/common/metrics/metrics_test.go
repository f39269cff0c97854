package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Shopify/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg).GetLedgerPrometheus()

	m.RecordDropped("payment", "non_positive_amount")
	m.RecordDropped("payment", "non_positive_amount")
	m.RecordDropped("order", "missing_amount")
	m.RecordProjectionFailure("ceiling_exceeded")
	m.RecordCreditWarning(true)
	m.RecordLedgerSize(12)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.droppedRecords.WithLabelValues("payment", "non_positive_amount")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.droppedRecords.WithLabelValues("order", "missing_amount")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.projectionFailures.WithLabelValues("ceiling_exceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.creditWarnings.WithLabelValues("true")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ledgerEntries))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var l *LedgerPrometheusMetrics
	var p *PublisherPrometheusMetrics
	var h *HTTPClientPrometheusMetrics
	var c *ConsumerMetrics

	assert.NotPanics(t, func() {
		l.RecordDropped("order", "x")
		l.RecordProjectionFailure("x")
		l.RecordCreditWarning(false)
		l.RecordLedgerSize(1)
		p.Observe(time.Now(), "topic", nil)
		h.Record(time.Second, "svc", "GET", "/x", 200)
		h.RecordFailure("svc", "/x")
		c.GenerateMetrics(time.Now(), &sarama.ConsumerMessage{}, nil)
	})
}

func TestConsumerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewConsumerMetrics("shopfin-storefront", reg)

	msg := &sarama.ConsumerMessage{Topic: "storefront.orders", Timestamp: time.Now().Add(-time.Second)}
	m.GenerateMetrics(time.Now(), msg, nil)
	m.GenerateMetrics(time.Now(), msg, errors.New("boom"))

	assert.Equal(t, 2, testutil.CollectAndCount(m.processingTimeHist))
	assert.Equal(t, 1, testutil.CollectAndCount(m.getMessageTimeHist))
}

func TestBuildFQName(t *testing.T) {
	assert.Equal(t, "go_shop_finance_api", BuildFQName("go-shop-finance", "api"))
	assert.Equal(t, "a_b_c_d_e", FlattenName("a b.c-d/e"))
}

func TestRegisterDB_twice(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewWithRegisterer(prometheus.NewRegistry())
	assert.NoError(t, m.RegisterDB(db, "write", "shopfin"))
	assert.NoError(t, m.RegisterDB(db, "write", "shopfin"))
	assert.NoError(t, m.RegisterDB(db, "read", "shopfin"))
}

func TestPublisherPrometheusMetrics(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry()).GetPublisherPrometheus()

	m.Observe(time.Now(), "shopfin.order.events", nil)
	m.Observe(time.Now(), "shopfin.order.events", errors.New("broker down"))
	m.Observe(time.Now(), "shopfin.order.events", errors.New("broker down"))

	assert.Equal(t, 2, testutil.CollectAndCount(m.publishDuration))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.publishFailures.WithLabelValues("shopfin.order.events")))
}

func TestHTTPClientPrometheusMetrics(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry()).GetHTTPClientPrometheus()

	m.Record(time.Second, "reminder-gateway", "POST", "/v1/reminders", 202)
	m.RecordFailure("reminder-gateway", "/v1/reminders")

	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transportFailures.WithLabelValues("reminder-gateway", "/v1/reminders")))
}
