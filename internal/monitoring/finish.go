package monitoring

import (
	"time"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err        error
	xlogFields []xlog.Field
}

type FinishOption func(*finishOptions)

// WithFinishCheckError logs the unit as failed when err is not nil.
func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.xlogFields = append(o.xlogFields, fields...)
	}
}

func (m *Monitor) Finish(opts ...FinishOption) {
	fOpts := &finishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	fields := append(fOpts.xlogFields,
		xlog.String("segment", m.segmentName),
		xlog.Duration("processDuration", time.Since(m.start)))

	switch {
	case fOpts.err != nil:
		fields = append(fields, xlog.String("status", "error"), xlog.Err(fOpts.err))
		xlog.Warn(m.ctx, messagePrefix[m.layer], fields...)
	case m.layer == LayerDelivery || m.layer == LayerService:
		// repositories only log failures, the service line already covers success
		fields = append(fields, xlog.String("status", "success"))
		xlog.Info(m.ctx, messagePrefix[m.layer], fields...)
	}

	if m.segment != nil {
		m.segment.End()
	}
}
