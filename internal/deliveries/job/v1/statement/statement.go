package statement

import (
	"context"
	"time"

	"github.com/printhaus/go-shop-finance/internal/common/flag"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/services"
)

type statementHandler struct {
	statementSrv services.StatementService
}

func Routes(ss services.StatementService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := statementHandler{statementSrv: ss}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"ExportCustomerStatements": handler.ExportCustomerStatements,
	}
}

func (sh *statementHandler) ExportCustomerStatements(ctx context.Context, date time.Time, flag flag.Job) error {
	res, err := sh.statementSrv.ExportCustomerStatements(ctx, date)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "ExportCustomerStatements",
		xlog.String("date", res.Date),
		xlog.Int("customers", res.Customers),
		xlog.Int("exported", res.Exported),
		xlog.Int("failed", res.Failed),
	)

	return nil
}
