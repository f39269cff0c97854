package services

import (
	"context"
	"fmt"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

type AdjustmentService interface {
	Create(ctx context.Context, in models.CreateAdjustmentIn) (out *models.Adjustment, err error)
}

type adjustment service

var _ AdjustmentService = (*adjustment)(nil)

// Create stores a manual adjustment. The direction comes only from the type
// flag; the amount is always positive.
func (s *adjustment) Create(ctx context.Context, in models.CreateAdjustmentIn) (out *models.Adjustment, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if in.Type != models.AdjustmentTypeDebit && in.Type != models.AdjustmentTypeCredit {
		err = fmt.Errorf("%w: %q", common.ErrInvalidAdjustmentType, in.Type)
		return nil, err
	}
	if !in.Amount.IsPositive() {
		err = common.ErrInvalidAmount
		return nil, err
	}

	out, err = s.srv.sqlRepo.GetAdjustmentRepository().Create(ctx, &models.Adjustment{
		ID:         s.srv.idgenerator.Generate(idgenerator.PrefixAdjustment),
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Type:       in.Type,
		AdjustedAt: in.AdjustedAt,
		Remarks:    in.Remarks,
	})
	if err != nil {
		err = checkWriteError(err, models.ErrKeyDataIsExist)
		return nil, err
	}

	publishEvent(ctx, s.srv.publishers.Adjustment, models.EventTypeAdjustmentRecorded, out.CustomerID, models.AdjustmentRecordedEvent{
		AdjustmentID: out.ID,
		CustomerID:   out.CustomerID,
		Amount:       models.NewDecimalFromExternal(out.Amount),
		Type:         string(out.Type),
		AdjustedAt:   models.FormatDate(out.AdjustedAt),
		CreatedAt:    out.CreatedAt,
	})

	return out, nil
}
