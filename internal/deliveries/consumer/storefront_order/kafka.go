package storefront_order

import (
	"context"

	dlqpublisher "github.com/printhaus/go-shop-finance/internal/common/dlq_publisher"
	"github.com/printhaus/go-shop-finance/internal/common/kafka"
	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/common/retry"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/repositories"
	"github.com/printhaus/go-shop-finance/internal/services"
)

const logMessage = "[KAFKA-CONSUMER] [STOREFRONT-ORDER] "

func New(
	ctx context.Context,
	cfg config.Config,
	orderSvc services.OrderService,
	cacheRepo repositories.CacheRepository,
	dlq dlqpublisher.Publisher,
	metrics metrics.Metrics,
) (*kafka.BaseConsumer, error) {
	consumerCfg := cfg.MessageBroker.KafkaConsumer

	handler := NewStorefrontOrderHandler(
		orderSvc,
		cacheRepo,
		dlq,
		retry.NewExponentialBackOff(cfg.ExponentialBackoff),
		cfg.App.Location(),
		consumerCfg.HandlerTimeoutStorefrontOrders,
	)

	c := kafka.NewBaseConsumer(kafka.BaseConsumerConfig{
		Ctx:           ctx,
		Config:        cfg,
		Metrics:       metrics,
		Handler:       handler,
		LogPrefix:     logMessage,
		Topic:         consumerCfg.TopicStorefrontOrder,
		ConsumerGroup: consumerCfg.ConsumerGroupStorefrontOrder,
	})

	xlog.Info(ctx, logMessage, xlog.String("status", "success init kafka consumer"))

	return c, nil
}
