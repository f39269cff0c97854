package matcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
)

func TestContextWithTimeoutRange(t *testing.T) {
	m := ContextWithTimeoutRange(50*time.Second, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	assert.True(t, m.Matches(ctx))

	short, cancelShort := context.WithTimeout(context.Background(), time.Second)
	defer cancelShort()
	assert.False(t, m.Matches(short))

	assert.False(t, m.Matches(context.Background()))
	assert.False(t, m.Matches("not a context"))
	assert.Equal(t, "context with deadline in [50s, 1m0s]", m.String())
}

func TestContextWithSource(t *testing.T) {
	m := ContextWithSource("storefront")

	assert.True(t, m.Matches(ctxdata.Sets(context.Background(), ctxdata.WithSource("storefront"))))
	assert.False(t, m.Matches(ctxdata.Sets(context.Background(), ctxdata.WithSource("http"))))
	assert.False(t, m.Matches(context.Background()))
}
