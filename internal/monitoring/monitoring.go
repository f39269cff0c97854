package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerUnknown    = "unknown"
)

// Monitor wraps one unit of work in a newrelic segment and logs its outcome
// when finished.
type Monitor struct {
	ctx         context.Context
	segmentName string
	layer       string
	start       time.Time
	segment     *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// New must be called directly from the monitored function: the segment name
// and layer are taken from the caller's frame.
func New(ctx context.Context, opts ...InitOption) *Monitor {
	fOpts := &initOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	if fOpts.segmentName == "" {
		pc, file, _, ok := runtime.Caller(1)
		if !ok {
			pc = 0
		}

		fOpts.segmentName = "unknown"
		if fn := runtime.FuncForPC(pc); fn != nil {
			fOpts.segmentName = getSegmentName(fn.Name())
		}
		if fOpts.layer == "" {
			fOpts.layer = layerFromFile(file)
		}
	}
	if fOpts.layer == "" {
		fOpts.layer = LayerUnknown
	}

	segment := newrelic.FromContext(ctx).StartSegment(fOpts.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", fOpts.layer)
	}

	return &Monitor{
		ctx:         ctx,
		layer:       fOpts.layer,
		start:       time.Now(),
		segmentName: fOpts.segmentName,
		segment:     segment,
	}
}

func layerFromFile(file string) string {
	switch {
	case strings.Contains(file, LayerRepository):
		return LayerRepository
	case strings.Contains(file, LayerService):
		return LayerService
	case strings.Contains(file, LayerDelivery):
		return LayerDelivery
	default:
		return LayerUnknown
	}
}

// NewMiddlewareRoundTripper adds newrelic external segments to outgoing
// requests. The transaction is read from each request's context.
func NewMiddlewareRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return newrelic.NewRoundTripper(next)
}
