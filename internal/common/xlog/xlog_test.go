package xlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{
			name: "production default",
		},
		{
			name: "development debug",
			opts: []Option{WithLogMode(ModeDevelopment), WithLogLevel("debug"), WithServiceName("shopfin")},
		},
		{
			name:    "invalid level",
			opts:    []Option{WithLogLevel("loud")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.opts...)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestContextFieldsAreAppended(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ReplaceForTest(zap.New(core))
	t.Cleanup(InitForTest)

	ctx := ctxdata.Sets(context.Background(),
		ctxdata.WithCorrelationID("corr-1"),
		ctxdata.WithIdempotencyKey("idem-1"),
	)

	Info(ctx, "[LEDGER]", String("customerId", "c-1"))
	Infof(ctx, "processed %d records", 3)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "[LEDGER]", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "corr-1", fields["correlation_id"])
	assert.Equal(t, "idem-1", fields["idempotency_key"])
	assert.Equal(t, "c-1", fields["customerId"])
	assert.Equal(t, "processed 3 records", entries[1].Message)
}
