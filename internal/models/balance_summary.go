package models

import "github.com/shopspring/decimal"

type BalanceSummary struct {
	TotalDebits    decimal.Decimal       `json:"totalDebits"`
	TotalCredits   decimal.Decimal       `json:"totalCredits"`
	FinalBalance   decimal.Decimal       `json:"finalBalance"`
	Classification BalanceClassification `json:"classification"`
}

// Summarize totals txns in one pass without sorting. FinalBalance always
// equals the last running balance Reconcile produces for the same set.
func Summarize(txns []Transaction, opts ...LedgerOption) BalanceSummary {
	o := newLedgerOptions(opts...)

	debits, credits := decimal.Zero, decimal.Zero
	for _, trx := range txns {
		debits = debits.Add(trx.DebitAmount)
		credits = credits.Add(trx.CreditAmount)
	}

	final := debits.Sub(credits)
	return BalanceSummary{
		TotalDebits:    debits,
		TotalCredits:   credits,
		FinalBalance:   final,
		Classification: ClassifyBalance(final, o.epsilon),
	}
}
