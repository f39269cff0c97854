package models

import "github.com/shopspring/decimal"

// CreditLimitCheck is computed per evaluation and never stored.
type CreditLimitCheck struct {
	CurrentBalance    decimal.Decimal  `json:"currentBalance"`
	ProspectiveAmount decimal.Decimal  `json:"prospectiveAmount"`
	CreditCeiling     *decimal.Decimal `json:"creditCeiling"`
	ProjectedBalance  decimal.Decimal  `json:"projectedBalance"`
	Enabled           bool             `json:"enabled"`
	Exceeds           bool             `json:"exceeds"`
}

// EvaluateCreditLimit warns when current plus prospective is strictly above
// the ceiling. A nil or non-positive ceiling disables the check. No epsilon
// applies: exceeding by any amount warns.
func EvaluateCreditLimit(current, prospective decimal.Decimal, ceiling *decimal.Decimal) CreditLimitCheck {
	check := CreditLimitCheck{
		CurrentBalance:    current,
		ProspectiveAmount: prospective,
		CreditCeiling:     ceiling,
		ProjectedBalance:  current.Add(prospective),
	}

	if ceiling == nil || !ceiling.IsPositive() {
		return check
	}

	check.Enabled = true
	check.Exceeds = check.ProjectedBalance.GreaterThan(*ceiling)

	return check
}
