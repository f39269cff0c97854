package settlement

import (
	"context"
	"time"

	"github.com/printhaus/go-shop-finance/internal/common/flag"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/services"
)

type settlementHandler struct {
	settlementSrv services.SettlementService
}

func Routes(ss services.SettlementService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := settlementHandler{settlementSrv: ss}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"ImportPaymentSettlement": handler.ImportPaymentSettlement,
	}
}

func (sh *settlementHandler) ImportPaymentSettlement(ctx context.Context, date time.Time, flag flag.Job) error {
	res, err := sh.settlementSrv.ImportPaymentSettlement(ctx, date)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "ImportPaymentSettlement",
		xlog.String("date", res.Date),
		xlog.Int("rows", res.Rows),
		xlog.Int("imported", res.Imported),
		xlog.Int("duplicates", res.Duplicates),
		xlog.Int("invalid", res.Invalid),
		xlog.Int("failed", res.Failed),
	)

	return nil
}
