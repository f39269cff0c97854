// Package remindergateway delivers policy due reminders to the notification gateway.
package remindergateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
	"github.com/printhaus/go-shop-finance/internal/common/httpclient"
	"github.com/printhaus/go-shop-finance/internal/common/metrics"
	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

const (
	logMessage  = "[REMINDER-GATEWAY-CLIENT]"
	serviceName = "reminder-gateway"

	endpointReminders = "/api/v1/reminders"
)

var ErrGatewayRejected = errors.New("reminder gateway rejected the reminder")

type Client interface {
	SendReminder(ctx context.Context, reminder models.PolicyDueReminder) error
}

type client struct {
	baseURL   string
	secretKey string
	wrapper   *httpclient.RequestWrapper
}

func New(cfg config.HTTPConfiguration, mtc metrics.Metrics) Client {
	return NewWithResty(httpclient.NewRestyClient(cfg), cfg, mtc)
}

func NewWithResty(restyClient *resty.Client, cfg config.HTTPConfiguration, mtc metrics.Metrics) Client {
	return &client{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		wrapper:   httpclient.NewRequestWrapper(restyClient, mtc, serviceName, logMessage),
	}
}

// ReminderKey identifies one reminder so the gateway can drop repeats of the
// same policy and due date.
func ReminderKey(reminder models.PolicyDueReminder) string {
	return fmt.Sprintf("%s-%s", reminder.PolicyID, reminder.DueDate)
}

func (c *client) SendReminder(ctx context.Context, reminder models.PolicyDueReminder) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	httpRes, err := c.wrapper.DoRequest(ctx, http.MethodPost, endpointReminders, c.baseURL+endpointReminders,
		func(r *resty.Request) *resty.Request {
			return r.
				SetHeader("Accept", "application/json; charset=utf-8").
				SetHeader(ctxdata.HeaderCorrelationID, ctxdata.GetCorrelationId(ctx)).
				SetHeader("X-Secret-Key", c.secretKey).
				SetHeader("X-Idempotency-Key", ReminderKey(reminder)).
				SetBody(reminder)
		})
	if err != nil {
		return err
	}

	switch httpRes.StatusCode() {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusConflict:
		// 409 means the gateway already has this reminder.
		return nil
	default:
		return fmt.Errorf("%w: http %d: %s", ErrGatewayRejected, httpRes.StatusCode(), string(httpRes.Body()))
	}
}
