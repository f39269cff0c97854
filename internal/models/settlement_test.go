package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettlementRow(t *testing.T) {
	tests := []struct {
		name    string
		record  []string
		want    SettlementRow
		wantErr bool
	}{
		{
			name:   "full row",
			record: []string{"BNK-1", "CUS-1", "1500.50", "2026-10-16", " transfer "},
			want: SettlementRow{
				Reference: "BNK-1", CustomerID: "CUS-1", Amount: decimal.RequireFromString("1500.50"),
				PaidAt: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), Notes: "transfer", Line: 2,
			},
		},
		{
			name:   "blank date and no notes column",
			record: []string{"BNK-2", "CUS-1", "20", ""},
			want:   SettlementRow{Reference: "BNK-2", CustomerID: "CUS-1", Amount: decimal.NewFromInt(20), Line: 2},
		},
		{name: "too short", record: []string{"BNK-3"}, wantErr: true},
		{name: "missing reference", record: []string{"", "CUS-1", "10"}, wantErr: true},
		{name: "bad amount", record: []string{"BNK-4", "CUS-1", "ten"}, wantErr: true},
		{name: "bad date", record: []string{"BNK-5", "CUS-1", "10", "16/10/2026"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSettlementRow(tt.record, 2, time.UTC)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Amount.Equal(got.Amount))
			got.Amount = tt.want.Amount
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSettlementHeader(t *testing.T) {
	assert.True(t, IsSettlementHeader([]string{"Reference", "customer_id"}))
	assert.False(t, IsSettlementHeader([]string{"BNK-1", "CUS-1"}))
}
