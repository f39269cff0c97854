package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID            string
	Name          string
	Phone         string
	Email         string
	CreditCeiling decimal.NullDecimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Ceiling returns the configured credit ceiling, nil when none is set.
func (c Customer) Ceiling() *decimal.Decimal {
	if !c.CreditCeiling.Valid {
		return nil
	}
	ceiling := c.CreditCeiling.Decimal
	return &ceiling
}

func (c Customer) ToCustomerOut() CustomerOut {
	return CustomerOut{
		Kind:          "customer",
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		CreditCeiling: NullableDecimal(c.Ceiling()),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type CustomerFilter struct {
	Search string
	Pagination
}

type CreateCustomerRequest struct {
	Name          string   `json:"name" validate:"required,max=100,noStartEndSpaces"`
	Phone         string   `json:"phone" validate:"omitempty,max=20,numeric"`
	Email         string   `json:"email" validate:"omitempty,email"`
	CreditCeiling *Decimal `json:"creditCeiling" validate:"omitempty,decimalGreaterThanOrEqual=0"`
}

type UpdateCreditCeilingRequest struct {
	// CreditCeiling of null or 0 disables credit checking for the customer.
	CreditCeiling *Decimal `json:"creditCeiling" validate:"omitempty,decimalGreaterThanOrEqual=0"`
}

type ListCustomerRequest struct {
	Search string `query:"search" json:"search" validate:"max=100"`
	Limit  uint64 `query:"limit" json:"limit" validate:"max=100"`
	Offset uint64 `query:"offset" json:"offset"`
}

type CustomerOut struct {
	Kind          string    `json:"kind"`
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	CreditCeiling *Decimal  `json:"creditCeiling"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
