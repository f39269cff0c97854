package publisher

import (
	"hash"
	"time"

	"github.com/Shopify/sarama"
	saramaMetrics "github.com/rcrowley/go-metrics"
)

type Option func(*sarama.Config)

// NewKafkaSyncProducer builds a producer that waits for every in-sync replica.
// Ledger events must not be lost, so acks are not relaxed for throughput.
func NewKafkaSyncProducer(brokers []string, opts ...Option) (sarama.SyncProducer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.Timeout = 2 * time.Second
	saramaCfg.Net.DialTimeout = 2 * time.Second
	saramaCfg.Net.ReadTimeout = 2 * time.Second
	saramaCfg.Net.WriteTimeout = 2 * time.Second

	for _, opt := range opts {
		opt(saramaCfg)
	}

	return sarama.NewSyncProducer(brokers, saramaCfg)
}

// WithCustomHasher keeps every event of one customer on the same partition when
// messages are keyed by customer id.
func WithCustomHasher(hasher func() hash.Hash32) Option {
	return func(cfg *sarama.Config) {
		cfg.Producer.Partitioner = sarama.NewCustomHashPartitioner(hasher)
	}
}

func WithMetricRegistry(registry saramaMetrics.Registry) Option {
	return func(cfg *sarama.Config) {
		if registry != nil {
			cfg.MetricRegistry = registry
		}
	}
}

func WithClientID(clientID string) Option {
	return func(cfg *sarama.Config) {
		if clientID != "" {
			cfg.ClientID = clientID
		}
	}
}
