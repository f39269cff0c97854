package services

import (
	"context"

	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
	"github.com/printhaus/go-shop-finance/internal/models"
	"github.com/printhaus/go-shop-finance/internal/monitoring"
)

type PaymentService interface {
	Create(ctx context.Context, in models.CreatePaymentIn) (out *models.Payment, err error)
}

type payment service

var _ PaymentService = (*payment)(nil)

func (s *payment) Create(ctx context.Context, in models.CreatePaymentIn) (out *models.Payment, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	source := in.Source
	if source == "" {
		source = models.PaymentSourceBackOffice
	}

	out, err = s.srv.sqlRepo.GetPaymentRepository().Create(ctx, &models.Payment{
		ID:         s.srv.idgenerator.Generate(idgenerator.PrefixPayment),
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		PaidAt:     in.PaidAt,
		Method:     in.Method,
		Notes:      in.Notes,
		Reference:  in.Reference,
		Source:     source,
	})
	if err != nil {
		err = checkWriteError(err, models.ErrKeyDataIsExist)
		return nil, err
	}

	publishEvent(ctx, s.srv.publishers.Payment, models.EventTypePaymentRecorded, out.CustomerID, models.PaymentRecordedEvent{
		PaymentID:  out.ID,
		CustomerID: out.CustomerID,
		Amount:     models.NewDecimalFromExternal(out.Amount),
		PaidAt:     models.FormatDate(out.PaidAt),
		Method:     out.Method,
		Reference:  out.Reference,
		Source:     out.Source,
		CreatedAt:  out.CreatedAt,
	})

	return out, nil
}
