package models

import "time"

type LedgerEntryOut struct {
	Date           string  `json:"date"`
	Kind           string  `json:"kind"`
	Description    string  `json:"description"`
	DebitAmount    Decimal `json:"debitAmount"`
	CreditAmount   Decimal `json:"creditAmount"`
	RunningBalance Decimal `json:"runningBalance"`
	Classification string  `json:"classification"`
	SourceID       string  `json:"sourceId"`
}

type BalanceSummaryOut struct {
	Kind           string  `json:"kind"`
	CustomerID     string  `json:"customerId"`
	TotalDebits    Decimal `json:"totalDebits"`
	TotalCredits   Decimal `json:"totalCredits"`
	FinalBalance   Decimal `json:"finalBalance"`
	Classification string  `json:"classification"`
}

type CustomerLedgerOut struct {
	Kind           string            `json:"kind"`
	CustomerID     string            `json:"customerId"`
	Entries        []LedgerEntryOut  `json:"entries"`
	Summary        BalanceSummaryOut `json:"summary"`
	DroppedRecords int               `json:"droppedRecords"`
	GeneratedAt    time.Time         `json:"generatedAt"`
}

type CreditLimitCheckOut struct {
	CurrentBalance    Decimal  `json:"currentBalance"`
	ProspectiveAmount Decimal  `json:"prospectiveAmount"`
	ProjectedBalance  Decimal  `json:"projectedBalance"`
	CreditCeiling     *Decimal `json:"creditCeiling"`
	Enabled           bool     `json:"enabled"`
	Exceeds           bool     `json:"exceeds"`
}

type CreditCheckRequest struct {
	ProspectiveAmount Decimal `json:"prospectiveAmount" validate:"decimalGreaterThan=0"`
}

func (e LedgerEntry) ToLedgerEntryOut() LedgerEntryOut {
	return LedgerEntryOut{
		Date:           FormatDate(e.Date),
		Kind:           string(e.Kind),
		Description:    e.Description,
		DebitAmount:    NewDecimalFromExternal(e.DebitAmount),
		CreditAmount:   NewDecimalFromExternal(e.CreditAmount),
		RunningBalance: NewDecimalFromExternal(e.RunningBalance),
		Classification: string(e.Classification),
		SourceID:       e.SourceID,
	}
}

func (s BalanceSummary) ToBalanceSummaryOut(customerID string) BalanceSummaryOut {
	return BalanceSummaryOut{
		Kind:           "balanceSummary",
		CustomerID:     customerID,
		TotalDebits:    NewDecimalFromExternal(s.TotalDebits),
		TotalCredits:   NewDecimalFromExternal(s.TotalCredits),
		FinalBalance:   NewDecimalFromExternal(s.FinalBalance),
		Classification: string(s.Classification),
	}
}

func (l CustomerLedger) ToCustomerLedgerOut() CustomerLedgerOut {
	entries := make([]LedgerEntryOut, 0, len(l.Entries))
	for _, e := range l.Entries {
		entries = append(entries, e.ToLedgerEntryOut())
	}

	return CustomerLedgerOut{
		Kind:           "customerLedger",
		CustomerID:     l.CustomerID,
		Entries:        entries,
		Summary:        l.Summary.ToBalanceSummaryOut(l.CustomerID),
		DroppedRecords: len(l.DroppedRecords),
		GeneratedAt:    l.GeneratedAt,
	}
}

func (c CreditLimitCheck) ToCreditLimitCheckOut() CreditLimitCheckOut {
	return CreditLimitCheckOut{
		CurrentBalance:    NewDecimalFromExternal(c.CurrentBalance),
		ProspectiveAmount: NewDecimalFromExternal(c.ProspectiveAmount),
		ProjectedBalance:  NewDecimalFromExternal(c.ProjectedBalance),
		CreditCeiling:     NullableDecimal(c.CreditCeiling),
		Enabled:           c.Enabled,
		Exceeds:           c.Exceeds,
	}
}
