// Package matcher holds gomock matchers for the contexts handed to mocked calls.
package matcher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
)

type contextMatcher struct {
	desc  string
	match func(ctx context.Context) bool
}

func (m contextMatcher) Matches(x any) bool {
	ctx, ok := x.(context.Context)
	return ok && m.match(ctx)
}

func (m contextMatcher) String() string {
	return m.desc
}

// ContextWithTimeoutRange matches a context whose deadline is between min and max away.
func ContextWithTimeoutRange(min, max time.Duration) gomock.Matcher {
	return contextMatcher{
		desc: fmt.Sprintf("context with deadline in [%s, %s]", min, max),
		match: func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			if !ok {
				return false
			}
			remaining := time.Until(deadline)
			return remaining > 0 && remaining >= min && remaining <= max
		},
	}
}

// ContextWithSource matches a context tagged with the given ctxdata source.
func ContextWithSource(source string) gomock.Matcher {
	return contextMatcher{
		desc: fmt.Sprintf("context from source %q", source),
		match: func(ctx context.Context) bool {
			return ctxdata.Get(ctx).Source == source
		},
	}
}
