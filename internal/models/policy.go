package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "active"
	PolicyStatusLapsed    PolicyStatus = "lapsed"
	PolicyStatusCancelled PolicyStatus = "cancelled"
)

// Policy is an installment-based insurance policy tracked for a customer.
// AnchorDate is the stored next due date; it only moves through MarkPaid.
type Policy struct {
	ID                string
	CustomerID        string
	PolicyNumber      string
	Insurer           string
	Frequency         Frequency
	IssuanceDate      time.Time
	AnchorDate        time.Time
	InstallmentAmount decimal.Decimal
	Status            PolicyStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (p Policy) Obligation() RecurringObligation {
	return RecurringObligation{
		Frequency:         p.Frequency,
		AnchorDate:        p.AnchorDate,
		InstallmentAmount: p.InstallmentAmount,
	}
}

func (p Policy) IsActive() bool {
	return p.Status == PolicyStatusActive
}

// PolicyPayment records one installment: the anchor it settled and the anchor it moved to.
type PolicyPayment struct {
	ID         string
	PolicyID   string
	PaidAnchor time.Time
	NewAnchor  time.Time
	Amount     decimal.Decimal
	PaidAt     time.Time
}

type PolicyFilter struct {
	CustomerID string
	Status     PolicyStatus
	Pagination
}

type CreatePolicyRequest struct {
	CustomerID        string  `json:"customerId" validate:"required"`
	PolicyNumber      string  `json:"policyNumber" validate:"required,max=50,noStartEndSpaces"`
	Insurer           string  `json:"insurer" validate:"required,max=100"`
	Frequency         string  `json:"frequency" validate:"required,oneof=Monthly Quarterly Half-Yearly Yearly"`
	IssuanceDate      string  `json:"issuanceDate" validate:"required,date"`
	InstallmentAmount Decimal `json:"installmentAmount" validate:"decimalGreaterThan=0"`
}

type CreatePolicyIn struct {
	CustomerID        string
	PolicyNumber      string
	Insurer           string
	Frequency         Frequency
	IssuanceDate      time.Time
	InstallmentAmount decimal.Decimal
}

type ListPolicyRequest struct {
	CustomerID string `query:"customerId" json:"customerId"`
	Status     string `query:"status" json:"status" validate:"omitempty,oneof=active lapsed cancelled"`
	Limit      uint64 `query:"limit" json:"limit" validate:"max=100"`
	Offset     uint64 `query:"offset" json:"offset"`
}

type PolicyOut struct {
	Kind              string  `json:"kind"`
	ID                string  `json:"id"`
	CustomerID        string  `json:"customerId"`
	PolicyNumber      string  `json:"policyNumber"`
	Insurer           string  `json:"insurer"`
	Frequency         string  `json:"frequency"`
	IssuanceDate      string  `json:"issuanceDate"`
	AnchorDate        string  `json:"anchorDate"`
	InstallmentAmount Decimal `json:"installmentAmount"`
	Status            string  `json:"status"`
}

func (p Policy) ToPolicyOut() PolicyOut {
	return PolicyOut{
		Kind:              "policy",
		ID:                p.ID,
		CustomerID:        p.CustomerID,
		PolicyNumber:      p.PolicyNumber,
		Insurer:           p.Insurer,
		Frequency:         string(p.Frequency),
		IssuanceDate:      FormatDate(p.IssuanceDate),
		AnchorDate:        FormatDate(p.AnchorDate),
		InstallmentAmount: NewDecimalFromExternal(p.InstallmentAmount),
		Status:            string(p.Status),
	}
}

const (
	DueUnavailableUnknownFrequency = "unknown_frequency"
	DueUnavailableCeilingExceeded  = "projection_ceiling_exceeded"
)

// PolicyDue is the projected view of a policy at a reference date. When the
// due date cannot be determined Available is false and Reason says why.
type PolicyDue struct {
	Policy         Policy
	ReferenceDate  time.Time
	NextDueDate    time.Time
	OverduePeriods int
	Available      bool
	Reason         string
}

type PolicyDueOut struct {
	Kind              string  `json:"kind"`
	PolicyID          string  `json:"policyId"`
	CustomerID        string  `json:"customerId"`
	PolicyNumber      string  `json:"policyNumber"`
	Frequency         string  `json:"frequency"`
	AnchorDate        string  `json:"anchorDate"`
	ReferenceDate     string  `json:"referenceDate"`
	NextDueDate       *string `json:"nextDueDate"`
	OverduePeriods    int     `json:"overduePeriods"`
	InstallmentAmount Decimal `json:"installmentAmount"`
	Available         bool    `json:"available"`
	Reason            string  `json:"reason,omitempty"`
}

func (d PolicyDue) ToPolicyDueOut() PolicyDueOut {
	out := PolicyDueOut{
		Kind:              "policyDue",
		PolicyID:          d.Policy.ID,
		CustomerID:        d.Policy.CustomerID,
		PolicyNumber:      d.Policy.PolicyNumber,
		Frequency:         string(d.Policy.Frequency),
		AnchorDate:        FormatDate(d.Policy.AnchorDate),
		ReferenceDate:     FormatDate(d.ReferenceDate),
		OverduePeriods:    d.OverduePeriods,
		InstallmentAmount: NewDecimalFromExternal(d.Policy.InstallmentAmount),
		Available:         d.Available,
		Reason:            d.Reason,
	}
	if d.Available {
		next := FormatDate(d.NextDueDate)
		out.NextDueDate = &next
	}
	return out
}

type MarkPaidResult struct {
	Policy  Policy
	Payment PolicyPayment
}

type MarkPaidOut struct {
	Kind          string  `json:"kind"`
	PolicyID      string  `json:"policyId"`
	PaymentID     string  `json:"paymentId"`
	PaidAnchor    string  `json:"paidAnchor"`
	NewAnchorDate string  `json:"newAnchorDate"`
	Amount        Decimal `json:"amount"`
}

func (r MarkPaidResult) ToMarkPaidOut() MarkPaidOut {
	return MarkPaidOut{
		Kind:          "policyPayment",
		PolicyID:      r.Policy.ID,
		PaymentID:     r.Payment.ID,
		PaidAnchor:    FormatDate(r.Payment.PaidAnchor),
		NewAnchorDate: FormatDate(r.Payment.NewAnchor),
		Amount:        NewDecimalFromExternal(r.Payment.Amount),
	}
}
