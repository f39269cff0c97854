package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPlaced = "placed"

	OrderSourceBackOffice = "back_office"
	OrderSourceStorefront = "storefront"
)

type Order struct {
	ID         string
	CustomerID string
	DisplayID  string
	TotalValue decimal.Decimal
	// OrderDate is the effective date. Zero when the source had none.
	OrderDate time.Time
	Status    string
	Source    string
	CreatedAt time.Time
}

type CreateOrderRequest struct {
	CustomerID string  `json:"customerId" validate:"required"`
	DisplayID  string  `json:"displayId" validate:"required,max=50,noStartEndSpaces"`
	TotalValue Decimal `json:"totalValue" validate:"decimalGreaterThan=0"`
	OrderDate  string  `json:"orderDate" validate:"omitempty,date"`
}

type CreateOrderIn struct {
	CustomerID string
	DisplayID  string
	TotalValue decimal.Decimal
	OrderDate  time.Time
	Source     string
}

type OrderOut struct {
	Kind        string               `json:"kind"`
	ID          string               `json:"id"`
	CustomerID  string               `json:"customerId"`
	DisplayID   string               `json:"displayId"`
	TotalValue  Decimal              `json:"totalValue"`
	OrderDate   string               `json:"orderDate"`
	Status      string               `json:"status"`
	CreditCheck *CreditLimitCheckOut `json:"creditCheck,omitempty"`
}

// CreateOrderResult carries the stored order plus the credit check run before it.
type CreateOrderResult struct {
	Order       Order
	CreditCheck CreditLimitCheck
}

func (r CreateOrderResult) ToOrderOut() OrderOut {
	out := r.Order.ToOrderOut()
	check := r.CreditCheck.ToCreditLimitCheckOut()
	out.CreditCheck = &check
	return out
}

func (o Order) ToOrderOut() OrderOut {
	return OrderOut{
		Kind:       "order",
		ID:         o.ID,
		CustomerID: o.CustomerID,
		DisplayID:  o.DisplayID,
		TotalValue: NewDecimalFromExternal(o.TotalValue),
		OrderDate:  FormatDate(o.OrderDate),
		Status:     o.Status,
	}
}
