package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdjustmentType string

// The type flag decides the direction of an adjustment. The amount is always positive.
const (
	AdjustmentTypeDebit  AdjustmentType = "debit"
	AdjustmentTypeCredit AdjustmentType = "credit"
)

type Adjustment struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	Type       AdjustmentType
	// AdjustedAt is zero when the source had no date.
	AdjustedAt time.Time
	Remarks    string
	CreatedAt  time.Time
}

type CreateAdjustmentRequest struct {
	CustomerID string  `json:"customerId" validate:"required"`
	Amount     Decimal `json:"amount" validate:"decimalGreaterThan=0"`
	Type       string  `json:"type" validate:"required,oneof=debit credit"`
	AdjustedAt string  `json:"adjustedAt" validate:"omitempty,date"`
	Remarks    string  `json:"remarks" validate:"required,max=255"`
}

type CreateAdjustmentIn struct {
	CustomerID string
	Amount     decimal.Decimal
	Type       AdjustmentType
	AdjustedAt time.Time
	Remarks    string
}

type AdjustmentOut struct {
	Kind       string  `json:"kind"`
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	Amount     Decimal `json:"amount"`
	Type       string  `json:"type"`
	AdjustedAt string  `json:"adjustedAt"`
	Remarks    string  `json:"remarks"`
}

func (a Adjustment) ToAdjustmentOut() AdjustmentOut {
	return AdjustmentOut{
		Kind:       "adjustment",
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Amount:     NewDecimalFromExternal(a.Amount),
		Type:       string(a.Type),
		AdjustedAt: FormatDate(a.AdjustedAt),
		Remarks:    a.Remarks,
	}
}
