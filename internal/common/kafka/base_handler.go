package kafka

import (
	"context"
	"time"

	"github.com/Shopify/sarama"

	dlqpublisher "github.com/printhaus/go-shop-finance/internal/common/dlq_publisher"
	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
)

const saramaMetricsFlushInterval = time.Second

// BaseHandler carries the ack, nack and metric plumbing shared by every consumer handler.
type BaseHandler struct {
	ConsumerMetrics *metrics.ConsumerMetrics
	DLQ             dlqpublisher.Publisher
	LogPrefix       string
}

func (b *BaseHandler) SetConsumerMetrics(m *metrics.ConsumerMetrics) {
	b.ConsumerMetrics = m
}

func (b *BaseHandler) CreateLogField(msg *sarama.ConsumerMessage) []xlog.Field {
	return []xlog.Field{
		xlog.Time("message_timestamp", msg.Timestamp),
		xlog.String("topic", msg.Topic),
		xlog.String("key", string(msg.Key)),
		xlog.Int32("partition", msg.Partition),
		xlog.Int64("offset", msg.Offset),
		xlog.String("message-claimed", string(msg.Value)),
	}
}

func (b *BaseHandler) Ack(ctx context.Context, session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	session.MarkMessage(message, "")
	xlog.Debug(ctx, b.LogPrefix+"[ACK]",
		xlog.String("topic", message.Topic),
		xlog.Int32("partition", message.Partition),
		xlog.Int64("offset", message.Offset),
	)
}

// Nack parks the message on the DLQ and still marks it, so one poison message
// cannot block the partition.
func (b *BaseHandler) Nack(ctx context.Context, session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage, causeErr error) {
	logField := b.CreateLogField(message)
	logField = append(logField, xlog.Err(causeErr))

	err := b.DLQ.Publish(ctx, models.FailedMessage{
		Key:             string(message.Key),
		Payload:         message.Value,
		Timestamp:       message.Timestamp,
		OriginTopic:     message.Topic,
		OriginPartition: message.Partition,
		OriginOffset:    message.Offset,
		CauseError:      causeErr,
	})
	if err != nil {
		logField = append(logField, xlog.String("dlq_status", "failed"))
		xlog.Error(ctx, b.LogPrefix+"[NACK-DLQ-FAILED]", logField...)
	} else {
		logField = append(logField, xlog.String("dlq_status", "success"))
		xlog.Info(ctx, b.LogPrefix+"[NACK-DLQ-SUCCESS]", logField...)
	}

	session.MarkMessage(message, "")
	xlog.Warn(ctx, b.LogPrefix+"[NACK]", logField...)
}

func (b *BaseHandler) RecordMetrics(startTime time.Time, message *sarama.ConsumerMessage, err error) {
	b.ConsumerMetrics.GenerateMetrics(startTime, message, err)
}
