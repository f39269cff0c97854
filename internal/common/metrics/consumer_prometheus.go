package metrics

import (
	"strconv"
	"time"

	"github.com/Shopify/sarama"
	"github.com/prometheus/client_golang/prometheus"
)

var consumerBuckets = []float64{0.001, 0.010, 0.100, 0.200, 0.500, 1, 2, 5, 10, 30, 60}

// ConsumerMetrics tracks one consumer group: broker lag until pickup, and handler duration.
type ConsumerMetrics struct {
	consumerGroup      string
	processingTimeHist *prometheus.HistogramVec
	getMessageTimeHist *prometheus.HistogramVec
}

func NewConsumerMetrics(consumerGroup string, reg prometheus.Registerer) *ConsumerMetrics {
	processingTimeHist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kafka_consumer_processing_seconds",
		Help:    "Time spent in the consumer handler per message.",
		Buckets: consumerBuckets,
	}, []string{"topic", "success", "consumer_group"})

	getMessageTimeHist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kafka_consumer_pickup_delay_seconds",
		Help:    "Time between the message timestamp and the handler picking it up.",
		Buckets: consumerBuckets,
	}, []string{"topic", "consumer_group"})

	reg.MustRegister(processingTimeHist, getMessageTimeHist)

	return &ConsumerMetrics{
		consumerGroup:      consumerGroup,
		processingTimeHist: processingTimeHist,
		getMessageTimeHist: getMessageTimeHist,
	}
}

func (m *ConsumerMetrics) GenerateMetrics(startTime time.Time, message *sarama.ConsumerMessage, processErr error) {
	if m == nil || message == nil {
		return
	}

	m.processingTimeHist.WithLabelValues(message.Topic, strconv.FormatBool(processErr == nil), m.consumerGroup).
		Observe(time.Since(startTime).Seconds())

	if !message.Timestamp.IsZero() {
		m.getMessageTimeHist.WithLabelValues(message.Topic, m.consumerGroup).
			Observe(startTime.Sub(message.Timestamp).Seconds())
	}
}
