package policy

import (
	"context"
	"time"

	"github.com/printhaus/go-shop-finance/internal/common/flag"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/services"
)

type policyHandler struct {
	policySrv services.PolicyService
}

func Routes(ps services.PolicyService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := policyHandler{policySrv: ps}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"PublishDuePolicyReminders": handler.PublishDuePolicyReminders,
	}
}

// PublishDuePolicyReminders emits one reminder per installment falling due within the reminder horizon of date.
func (ph *policyHandler) PublishDuePolicyReminders(ctx context.Context, date time.Time, flag flag.Job) error {
	res, err := ph.policySrv.PublishDueReminders(ctx, date)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "PublishDuePolicyReminders",
		xlog.String("reference-date", res.ReferenceDate),
		xlog.Int("due", res.Due),
		xlog.Int("published", res.Published),
		xlog.Int("failed", res.Failed),
	)

	return nil
}
