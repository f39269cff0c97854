package services

import (
	"context"
	"time"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

const (
	logStatement          = "[STATEMENT-EXPORT]"
	statementScanPageSize = 200
)

type StatementService interface {
	// ExportCustomerStatements writes one ledger CSV per customer with activity
	// into the statement bucket under date. A failing customer is counted and skipped.
	ExportCustomerStatements(ctx context.Context, date time.Time) (out *models.StatementExportResult, err error)
}

type statement service

var _ StatementService = (*statement)(nil)

func (s *statement) ExportCustomerStatements(ctx context.Context, date time.Time) (out *models.StatementExportResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	out = &models.StatementExportResult{Date: models.FormatDate(date)}
	repo := s.srv.sqlRepo.GetCustomerRepository()

	for page := (models.Pagination{Limit: statementScanPageSize}); ; page = nextPage(page) {
		ids, errList := repo.ListIDsWithActivity(ctx, page)
		if errList != nil {
			err = checkDatabaseError(errList)
			return nil, err
		}

		for _, id := range ids {
			out.Customers++
			if errExport := s.exportOne(ctx, out.Date, id); errExport != nil {
				out.Failed++
				xlog.Warn(ctx, logStatement,
					xlog.String("message", "failed to export statement"),
					xlog.String("customerId", id),
					xlog.Err(errExport))
				continue
			}
			out.Exported++
		}

		if pageDone(len(ids), page) {
			break
		}
	}

	xlog.Info(ctx, logStatement,
		xlog.String("date", out.Date),
		xlog.Int("customers", out.Customers),
		xlog.Int("exported", out.Exported),
		xlog.Int("failed", out.Failed))

	return out, nil
}

func (s *statement) exportOne(ctx context.Context, date, customerID string) error {
	ledger, err := s.srv.Ledger.GetLedger(ctx, customerID)
	if err != nil {
		return err
	}

	payload := models.NewCloudStoragePayload(models.StatementObjectPath(s.srv.conf.CloudStorageConfig.StatementPath, date, customerID))
	_, err = s.srv.cloudStorage.WriteCSV(ctx, &payload, ledger.ToCSVRows())
	return err
}
