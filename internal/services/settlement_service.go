package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

const logSettlement = "[SETTLEMENT-IMPORT]"

type SettlementService interface {
	// ImportPaymentSettlement records every row of the bank settlement file of
	// date as a payment. Rows already recorded under the same reference are skipped.
	ImportPaymentSettlement(ctx context.Context, date time.Time) (out *models.SettlementImportResult, err error)
}

type settlement service

var _ SettlementService = (*settlement)(nil)

func (s *settlement) ImportPaymentSettlement(ctx context.Context, date time.Time) (out *models.SettlementImportResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	out = &models.SettlementImportResult{Date: models.FormatDate(date)}
	payload := models.NewCloudStoragePayload(models.SettlementObjectPath(s.srv.conf.CloudStorageConfig.SettlementPath, out.Date))

	if exist, _ := s.srv.cloudStorage.IsObjectExist(ctx, &payload); !exist {
		err = fmt.Errorf("%w: %s", common.ErrSettlementNotFound, payload.GetFilePath())
		return nil, err
	}

	reader, err := s.srv.cloudStorage.NewReader(ctx, &payload)
	if err != nil {
		return nil, err
	}

	store, err := s.srv.newStagingStore("settlement-" + out.Date)
	if err != nil {
		_ = reader.Close()
		return nil, fmt.Errorf("failed to open staging store: %w", err)
	}
	defer func() {
		if errClose := store.Close(); errClose != nil {
			xlog.Warn(ctx, logSettlement, xlog.String("message", "failed to close staging store"), xlog.Err(errClose))
		}
		if errClean := store.Clean(); errClean != nil {
			xlog.Warn(ctx, logSettlement, xlog.String("message", "failed to clean staging store"), xlog.Err(errClean))
		}
	}()

	// cancelling on every return stops the reader goroutine and closes the object
	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// stage first so a file with the same reference twice is recorded once
	for res := range s.srv.fileRepo.StreamReadCSVFile(streamCtx, reader) {
		if res.Err != nil {
			var parseErr *csv.ParseError
			if !errors.As(res.Err, &parseErr) {
				err = fmt.Errorf("failed to read settlement line %d: %w", res.Line, res.Err)
				return nil, err
			}
			out.Invalid++
			xlog.Warn(ctx, logSettlement, xlog.Int("line", res.Line), xlog.Err(res.Err))
			continue
		}
		if res.Line == 1 && models.IsSettlementHeader(res.Data) {
			continue
		}

		row, errParse := models.ParseSettlementRow(res.Data, res.Line, s.srv.location)
		if errParse != nil {
			out.Invalid++
			xlog.Warn(ctx, logSettlement, xlog.Int("line", res.Line), xlog.Err(errParse))
			continue
		}

		out.Rows++
		added, errStage := store.SetIfAbsent(row.Reference, row)
		if errStage != nil {
			return nil, fmt.Errorf("failed to stage settlement row %d: %w", res.Line, errStage)
		}
		if !added {
			out.Duplicates++
		}
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	if out.Rows == 0 {
		err = fmt.Errorf("%w: %s", common.ErrSettlementFileEmpty, payload.GetFilePath())
		return nil, err
	}

	paymentRepo := s.srv.sqlRepo.GetPaymentRepository()
	err = store.ForEach(func(reference string, row models.SettlementRow) error {
		exists, errExists := paymentRepo.ExistsByReference(ctx, reference)
		if errExists != nil {
			return checkDatabaseError(errExists)
		}
		if exists {
			out.Duplicates++
			return nil
		}

		if _, errCreate := s.srv.Payment.Create(ctx, row.ToCreatePaymentIn(s.srv.conf.SettlementImport.PaymentMethod)); errCreate != nil {
			out.Failed++
			xlog.Warn(ctx, logSettlement,
				xlog.String("message", "failed to record settlement row"),
				xlog.String("reference", reference),
				xlog.Int("line", row.Line),
				xlog.Err(errCreate))
			return nil
		}
		out.Imported++
		return nil
	})
	if err != nil {
		return nil, err
	}

	xlog.Info(ctx, logSettlement,
		xlog.String("date", out.Date),
		xlog.Int("rows", out.Rows),
		xlog.Int("duplicates", out.Duplicates),
		xlog.Int("invalid", out.Invalid),
		xlog.Int("imported", out.Imported),
		xlog.Int("failed", out.Failed))

	return out, nil
}
