package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentSourceBackOffice = "back_office"
	PaymentSourceSettlement = "settlement"
)

type Payment struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	// PaidAt is zero when the source had no payment date.
	PaidAt    time.Time
	Method    string
	Notes     string
	Reference string
	Source    string
	CreatedAt time.Time
}

type CreatePaymentRequest struct {
	CustomerID string  `json:"customerId" validate:"required"`
	Amount     Decimal `json:"amount" validate:"decimalGreaterThan=0"`
	PaidAt     string  `json:"paidAt" validate:"omitempty,date"`
	Method     string  `json:"method" validate:"required,max=30"`
	Notes      string  `json:"notes" validate:"max=255"`
	Reference  string  `json:"reference" validate:"max=64"`
}

type CreatePaymentIn struct {
	CustomerID string
	Amount     decimal.Decimal
	PaidAt     time.Time
	Method     string
	Notes      string
	Reference  string
	Source     string
}

type PaymentOut struct {
	Kind       string  `json:"kind"`
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	Amount     Decimal `json:"amount"`
	PaidAt     string  `json:"paidAt"`
	Method     string  `json:"method"`
	Notes      string  `json:"notes"`
	Reference  string  `json:"reference"`
}

func (p Payment) ToPaymentOut() PaymentOut {
	return PaymentOut{
		Kind:       "payment",
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Amount:     NewDecimalFromExternal(p.Amount),
		PaidAt:     FormatDate(p.PaidAt),
		Method:     p.Method,
		Notes:      p.Notes,
		Reference:  p.Reference,
	}
}
