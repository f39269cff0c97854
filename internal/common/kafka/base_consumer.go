package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shopify/sarama"
	"golang.org/x/sync/errgroup"

	"github.com/printhaus/go-shop-finance/internal/common/graceful"
	"github.com/printhaus/go-shop-finance/internal/common/messaging"
	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
)

// ConsumerHandler is a sarama group handler that also receives the consumer
// metrics once the group is set up.
type ConsumerHandler interface {
	sarama.ConsumerGroupHandler
	SetConsumerMetrics(m *metrics.ConsumerMetrics)
}

type BaseConsumer struct {
	ctx           context.Context
	clientID      string
	consumerCfg   config.ConsumerConfig
	cg            sarama.ConsumerGroup
	handler       ConsumerHandler
	metrics       metrics.Metrics
	logPrefix     string
	topic         string
	consumerGroup string
}

type BaseConsumerConfig struct {
	Ctx           context.Context
	Config        config.Config
	Metrics       metrics.Metrics
	Handler       ConsumerHandler
	LogPrefix     string
	Topic         string
	ConsumerGroup string
}

func NewBaseConsumer(cfg BaseConsumerConfig) *BaseConsumer {
	return &BaseConsumer{
		ctx:           cfg.Ctx,
		consumerCfg:   cfg.Config.MessageBroker.KafkaConsumer,
		handler:       cfg.Handler,
		metrics:       cfg.Metrics,
		logPrefix:     cfg.LogPrefix,
		topic:         cfg.Topic,
		consumerGroup: cfg.ConsumerGroup,
	}
}

func (c *BaseConsumer) PreStart() error {
	saramaCfg, err := messaging.CreateSaramaConsumerConfig(c.consumerCfg, c.logPrefix)
	if err != nil {
		return fmt.Errorf("failed to create consumer config: %w", err)
	}

	if c.topic == "" {
		return errors.New("no topics given to be consumed, please set the topic")
	}

	if c.consumerGroup == "" {
		return errors.New("no kafka consumer group defined, please set the group")
	}

	if c.metrics != nil {
		saramaCfg.MetricRegistry = c.metrics.SaramaRegistry(c.consumerGroup, saramaMetricsFlushInterval)
		c.handler.SetConsumerMetrics(metrics.NewConsumerMetrics(c.consumerGroup, c.metrics.PrometheusRegisterer()))
	}

	c.clientID = saramaCfg.ClientID

	client, err := sarama.NewConsumerGroup(c.consumerCfg.Brokers, c.consumerGroup, saramaCfg)
	if err != nil {
		return err
	}
	c.cg = client

	return nil
}

func (c *BaseConsumer) Start() graceful.ProcessStarter {
	return func() error {
		if err := c.PreStart(); err != nil {
			return err
		}

		go func() {
			for errCg := range c.cg.Errors() {
				xlog.Error(c.ctx, c.logPrefix, xlog.Err(fmt.Errorf("client error: %w", errCg)))
			}
		}()

		eg, ctx := errgroup.WithContext(c.ctx)

		eg.Go(func() error {
			for {
				if err := c.cg.Consume(ctx, []string{c.topic}, c.handler); err != nil {
					xlog.Warn(c.ctx, c.logPrefix, xlog.Err(fmt.Errorf("error start consumer: %w", err)))
				}
				if err := c.ctx.Err(); err != nil {
					return fmt.Errorf("context was canceled: %w", err)
				}
			}
		})

		return eg.Wait()
	}
}

func (c *BaseConsumer) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		if c.cg == nil {
			return nil
		}
		return c.cg.Close()
	}
}
