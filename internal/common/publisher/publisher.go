package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shopify/sarama"

	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
)

const (
	logIdentifier = "[EVENT-PUBLISHER]"

	HeaderEventType     = "event-type"
	HeaderCorrelationID = "correlation-id"
)

type Publisher interface {
	Publish(ctx context.Context, message any, opts ...PublishOption) error
}

type publishOptions struct {
	key     string
	headers map[string]string
}

type PublishOption func(*publishOptions)

func WithKey(key string) PublishOption {
	return func(opts *publishOptions) {
		opts.key = key
	}
}

func WithHeaders(headers map[string]string) PublishOption {
	return func(opts *publishOptions) {
		if opts.headers == nil {
			opts.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			opts.headers[k] = v
		}
	}
}

func WithEventType(eventType string) PublishOption {
	return WithHeaders(map[string]string{HeaderEventType: eventType})
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	metrics  metrics.Metrics
}

func NewPublisher(p sarama.SyncProducer, topic string, mtc metrics.Metrics) Publisher {
	return &publisher{
		producer: p,
		topic:    topic,
		metrics:  mtc,
	}
}

func (d *publisher) Publish(ctx context.Context, message any, opts ...PublishOption) (err error) {
	startTime := time.Now()
	defer func() {
		if d.metrics != nil {
			d.metrics.GetPublisherPrometheus().Observe(startTime, d.topic, err)
		}
	}()

	options := &publishOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if correlationID := ctxdata.GetCorrelationId(ctx); correlationID != "" {
		WithHeaders(map[string]string{HeaderCorrelationID: correlationID})(options)
	}

	msg, err := d.prepareMessage(message, options)
	if err != nil {
		xlog.Error(ctx, logIdentifier,
			xlog.String("status", "failed prepare message"),
			xlog.String("topic", d.topic),
			xlog.Err(err))
		return err
	}

	partition, offset, err := d.producer.SendMessage(msg)
	if err != nil {
		xlog.Error(ctx, logIdentifier,
			xlog.String("status", "failed send message"),
			xlog.String("topic", d.topic),
			xlog.Err(err))
		return fmt.Errorf("failed to publish to %s: %w", d.topic, err)
	}

	xlog.Info(ctx, logIdentifier,
		xlog.String("status", "success publish message"),
		xlog.String("topic", d.topic),
		xlog.String("key", options.key),
		xlog.Int32("partition", partition),
		xlog.Int64("offset", offset),
	)

	return nil
}

func (d *publisher) prepareMessage(message any, opts *publishOptions) (*sarama.ProducerMessage, error) {
	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	producerMsg := &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}

	if opts.key != "" {
		producerMsg.Key = sarama.StringEncoder(opts.key)
	}

	for key, value := range opts.headers {
		producerMsg.Headers = append(producerMsg.Headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	return producerMsg, nil
}
