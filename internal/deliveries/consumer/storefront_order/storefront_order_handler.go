package storefront_order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Shopify/sarama"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
	dlqpublisher "github.com/printhaus/go-shop-finance/internal/common/dlq_publisher"
	"github.com/printhaus/go-shop-finance/internal/common/kafka"
	"github.com/printhaus/go-shop-finance/internal/common/retry"
	"github.com/printhaus/go-shop-finance/internal/common/validation"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/repositories"
	"github.com/printhaus/go-shop-finance/internal/services"
)

const defaultTimeout = 30 * time.Second

type StorefrontOrderHandler struct {
	kafka.BaseHandler

	orderSvc  services.OrderService
	cacheRepo repositories.CacheRepository
	retryer   retry.Retryer
	loc       *time.Location
	timeout   time.Duration
}

var _ kafka.ConsumerHandler = (*StorefrontOrderHandler)(nil)

func NewStorefrontOrderHandler(
	orderSvc services.OrderService,
	cacheRepo repositories.CacheRepository,
	dlq dlqpublisher.Publisher,
	retryer retry.Retryer,
	loc *time.Location,
	timeout time.Duration,
) *StorefrontOrderHandler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if loc == nil {
		loc = time.UTC
	}

	return &StorefrontOrderHandler{
		BaseHandler: kafka.BaseHandler{DLQ: dlq, LogPrefix: logMessage},
		orderSvc:    orderSvc,
		cacheRepo:   cacheRepo,
		retryer:     retryer,
		loc:         loc,
		timeout:     timeout,
	}
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (h *StorefrontOrderHandler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (h *StorefrontOrderHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (h *StorefrontOrderHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			h.consume(session, message)
		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *StorefrontOrderHandler) consume(session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	ctx := ctxdata.Sets(session.Context(), ctxdata.WithSource("storefront"))
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	logField := h.CreateLogField(message)

	err := h.processMessage(ctx, message)
	h.RecordMetrics(start, message, err)

	logField = append(logField, xlog.Duration("response-time", time.Since(start)))
	if err != nil {
		logField = append(logField, xlog.Err(err))
		xlog.Warn(ctx, logMessage, logField...)

		h.Nack(ctx, session, message, err)
		return
	}

	xlog.Info(ctx, logMessage, logField...)
	h.Ack(ctx, session, message)
}

func (h *StorefrontOrderHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event models.StorefrontOrderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("error unmarshal json: %w", err)
	}

	if err := validation.ValidateStruct(event); err != nil {
		return fmt.Errorf("invalid storefront order %q: %w", event.EventID, err)
	}

	orderDate, err := models.ParseDate(event.OrderDate, h.loc, time.Time{})
	if err != nil {
		return fmt.Errorf("invalid storefront order date %q: %w", event.OrderDate, err)
	}

	dedupKey := models.StorefrontEventKey(event.EventID)
	fresh, err := h.cacheRepo.SetIfNotExists(ctx, dedupKey, message.Offset, models.TTLStorefrontEvent)
	if err != nil {
		// the unique display id still guards against a double insert
		xlog.Warn(ctx, logMessage, xlog.String("eventId", event.EventID), xlog.Err(fmt.Errorf("dedup unavailable: %w", err)))
		fresh = true
	}
	if !fresh {
		xlog.Info(ctx, logMessage, xlog.String("eventId", event.EventID), xlog.String("status", "duplicate event skipped"))
		return nil
	}

	in := models.CreateOrderIn{
		CustomerID: event.CustomerID,
		DisplayID:  strings.TrimSpace(event.DisplayID),
		TotalValue: event.TotalValue.Decimal,
		OrderDate:  orderDate,
		Source:     models.OrderSourceStorefront,
	}

	err = h.retryer.Retry(ctx, func() error {
		res, errCreate := h.orderSvc.Create(ctx, in)
		if errCreate == nil {
			if res.CreditCheck.Exceeds {
				xlog.Warn(ctx, logMessage,
					xlog.String("eventId", event.EventID),
					xlog.String("orderId", res.Order.ID),
					xlog.String("status", "order stored above credit ceiling"))
			}
			return nil
		}
		if isPermanent(errCreate) {
			return h.retryer.StopRetryWithErr(errCreate)
		}
		return errCreate
	}, nil)

	if errors.Is(err, common.ErrOrderAlreadyExists) {
		xlog.Info(ctx, logMessage, xlog.String("displayId", in.DisplayID), xlog.String("status", "order already stored"))
		return nil
	}
	if err != nil {
		// a parked message may be replayed from the DLQ, so the event must not stay marked as seen
		if errDel := h.cacheRepo.Del(ctx, dedupKey); errDel != nil {
			xlog.Warn(ctx, logMessage, xlog.String("eventId", event.EventID), xlog.Err(fmt.Errorf("release dedup key: %w", errDel)))
		}
		return fmt.Errorf("create storefront order %s: %w", in.DisplayID, err)
	}

	return nil
}

// isPermanent reports errors a retry cannot fix: rejected input, unknown
// customers, duplicates and blocked credit.
func isPermanent(err error) bool {
	if errors.Is(err, common.ErrOrderAlreadyExists) || errors.Is(err, common.ErrCreditLimitExceeded) {
		return true
	}

	var detail models.ErrorDetail
	if errors.As(err, &detail) {
		return detail.IsClientError()
	}

	return false
}
