package models

import (
	"github.com/shopspring/decimal"
)

// Decimal is decimal.Decimal with an unquoted JSON representation,
// e.g. 10 instead of "10". It still accepts both forms when decoding.
//
// WARNING: javascript clients decode JSON numbers as float64 and may lose precision.
type Decimal struct {
	decimal.Decimal
}

func NewDecimalFromExternal(d decimal.Decimal) Decimal {
	return Decimal{d}
}

func NewDecimal(value string) (Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{d}, nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// NullableDecimal converts an optional amount for output.
func NullableDecimal(d *decimal.Decimal) *Decimal {
	if d == nil {
		return nil
	}
	out := NewDecimalFromExternal(*d)
	return &out
}
