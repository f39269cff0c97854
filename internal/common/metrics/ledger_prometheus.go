package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// LedgerPrometheusMetrics counts the recoverable conditions of the ledger and
// recurrence engine. All methods are no-ops on a nil receiver.
type LedgerPrometheusMetrics struct {
	droppedRecords     *prometheus.CounterVec
	projectionFailures *prometheus.CounterVec
	creditWarnings     *prometheus.CounterVec
	ledgerEntries      prometheus.Histogram
}

func newLedgerPrometheusMetrics(reg prometheus.Registerer) *LedgerPrometheusMetrics {
	mtc := &LedgerPrometheusMetrics{
		droppedRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopfin_ledger_dropped_records_total",
				Help: "Malformed source records dropped while normalizing a customer ledger.",
			},
			[]string{"kind", "reason"},
		),
		projectionFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopfin_recurrence_projection_failures_total",
				Help: "Due date projections that could not be determined, by reason.",
			},
			[]string{"reason"},
		),
		creditWarnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopfin_credit_limit_warnings_total",
				Help: "Credit checks where the projected balance exceeded the ceiling.",
			},
			[]string{"blocked"},
		),
		ledgerEntries: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shopfin_ledger_entries",
				Help:    "Number of entries in a reconciled customer ledger.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}

	reg.MustRegister(mtc.droppedRecords, mtc.projectionFailures, mtc.creditWarnings, mtc.ledgerEntries)

	return mtc
}

func (m *LedgerPrometheusMetrics) RecordDropped(kind, reason string) {
	if m == nil {
		return
	}
	m.droppedRecords.WithLabelValues(kind, reason).Inc()
}

func (m *LedgerPrometheusMetrics) RecordProjectionFailure(reason string) {
	if m == nil {
		return
	}
	m.projectionFailures.WithLabelValues(reason).Inc()
}

func (m *LedgerPrometheusMetrics) RecordCreditWarning(blocked bool) {
	if m == nil {
		return
	}
	m.creditWarnings.WithLabelValues(strconv.FormatBool(blocked)).Inc()
}

func (m *LedgerPrometheusMetrics) RecordLedgerSize(entries int) {
	if m == nil {
		return
	}
	m.ledgerEntries.Observe(float64(entries))
}
