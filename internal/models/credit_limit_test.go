package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestEvaluateCreditLimit(t *testing.T) {
	tests := []struct {
		name          string
		current       int64
		prospective   int64
		ceiling       *decimal.Decimal
		wantEnabled   bool
		wantExceeds   bool
		wantProjected int64
	}{
		{name: "over the ceiling", current: 4000, prospective: 2500, ceiling: ptr(decimal.NewFromInt(6000)), wantEnabled: true, wantExceeds: true, wantProjected: 6500},
		{name: "exactly at the ceiling does not warn", current: 4000, prospective: 2000, ceiling: ptr(decimal.NewFromInt(6000)), wantEnabled: true, wantProjected: 6000},
		{name: "credit balance absorbs the order", current: -1000, prospective: 6500, ceiling: ptr(decimal.NewFromInt(6000)), wantEnabled: true, wantProjected: 5500},
		{name: "zero ceiling disables", current: 100000, prospective: 100000, ceiling: ptr(decimal.Zero), wantProjected: 200000},
		{name: "negative ceiling disables", current: 100000, prospective: 1, ceiling: ptr(decimal.NewFromInt(-5)), wantProjected: 100001},
		{name: "nil ceiling disables", current: 100000, prospective: 1, wantProjected: 100001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateCreditLimit(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.prospective), tt.ceiling)
			assert.Equal(t, tt.wantEnabled, got.Enabled)
			assert.Equal(t, tt.wantExceeds, got.Exceeds)
			assert.True(t, got.ProjectedBalance.Equal(decimal.NewFromInt(tt.wantProjected)))
		})
	}
}

func TestEvaluateCreditLimit_NoEpsilon(t *testing.T) {
	got := EvaluateCreditLimit(decimal.RequireFromString("5999.999"), decimal.RequireFromString("0.002"), ptr(decimal.NewFromInt(6000)))
	assert.True(t, got.Exceeds)
}

func TestEvaluateCreditLimit_Monotonic(t *testing.T) {
	current := decimal.NewFromInt(3000)
	ceiling := ptr(decimal.NewFromInt(5000))

	exceeded := false
	for amount := int64(0); amount <= 4000; amount += 50 {
		got := EvaluateCreditLimit(current, decimal.NewFromInt(amount), ceiling)
		if exceeded {
			assert.True(t, got.Exceeds, "prospective %d flipped back", amount)
		}
		exceeded = got.Exceeds
	}
	assert.True(t, exceeded)
}
