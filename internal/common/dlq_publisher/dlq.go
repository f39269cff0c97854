package dlqpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shopify/sarama"

	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
)

const (
	prefixLogMessage  = "[DLQ]"
	headerOriginTopic = "origin-topic"
)

type Publisher interface {
	Publish(ctx context.Context, message models.FailedMessage) error
}

type kafkaDlq struct {
	producer sarama.SyncProducer
	topic    string
	metrics  metrics.Metrics
	now      func() time.Time
}

func New(p sarama.SyncProducer, topic string, metrics metrics.Metrics) Publisher {
	return kafkaDlq{producer: p, topic: topic, metrics: metrics, now: time.Now}
}

func (d kafkaDlq) Publish(ctx context.Context, message models.FailedMessage) (err error) {
	startTime := time.Now()
	defer func() {
		if d.metrics != nil {
			d.metrics.GetPublisherPrometheus().Observe(startTime, d.topic, err)
		}
	}()

	msg, err := d.prepareMessage(message)
	if err != nil {
		xlog.Error(ctx, prefixLogMessage,
			xlog.String("status", "prepare dlq message failed"),
			xlog.Err(err))
		return err
	}

	_, _, err = d.producer.SendMessage(msg)
	if err != nil {
		xlog.Error(ctx, prefixLogMessage,
			xlog.String("status", "publish dlq failed"),
			xlog.String("topic", d.topic),
			xlog.Err(err))
		return err
	}

	xlog.Info(ctx, prefixLogMessage,
		xlog.String("status", "success publish dlq message"),
		xlog.Time("message_timestamp", message.Timestamp),
		xlog.String("topic", d.topic),
		xlog.String("origin_topic", message.OriginTopic),
	)

	return nil
}

func (d kafkaDlq) prepareMessage(message models.FailedMessage) (*sarama.ProducerMessage, error) {
	message = message.Sealed(d.now())

	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	producerMsg := &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}
	if message.Key != "" {
		producerMsg.Key = sarama.StringEncoder(message.Key)
	}
	if message.OriginTopic != "" {
		producerMsg.Headers = []sarama.RecordHeader{
			{Key: []byte(headerOriginTopic), Value: []byte(message.OriginTopic)},
		}
	}

	return producerMsg, nil
}
