package models

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type BalanceClassification string

const (
	BalanceDue    BalanceClassification = "Due"
	BalanceCredit BalanceClassification = "Credit"
	BalanceZero   BalanceClassification = "Zero"
)

// DefaultBalanceEpsilon is one cent. Balances strictly inside (-eps, eps) are settled.
var DefaultBalanceEpsilon = decimal.New(1, -2)

// LedgerEntry is a transaction plus the running balance after applying it.
// A positive balance means the customer owes money.
type LedgerEntry struct {
	Transaction
	RunningBalance decimal.Decimal       `json:"runningBalance"`
	Classification BalanceClassification `json:"classification"`
}

type LedgerOption func(*ledgerOptions)

type ledgerOptions struct {
	epsilon decimal.Decimal
}

// WithBalanceEpsilon overrides the settled band. Non-positive values are ignored.
func WithBalanceEpsilon(eps decimal.Decimal) LedgerOption {
	return func(o *ledgerOptions) {
		if eps.IsPositive() {
			o.epsilon = eps
		}
	}
}

func newLedgerOptions(opts ...LedgerOption) ledgerOptions {
	o := ledgerOptions{epsilon: DefaultBalanceEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ClassifyBalance reports Due, Credit or Zero for balance using the given band.
func ClassifyBalance(balance, epsilon decimal.Decimal) BalanceClassification {
	switch {
	case balance.Abs().LessThan(epsilon):
		return BalanceZero
	case balance.IsPositive():
		return BalanceDue
	default:
		return BalanceCredit
	}
}

// SortTransactions returns a chronologically sorted copy of txns. On equal
// dates debits come before credits; otherwise input order is kept.
func SortTransactions(txns []Transaction) []Transaction {
	sorted := slices.Clone(txns)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return debitRank(a) - debitRank(b)
	})
	return sorted
}

func debitRank(t Transaction) int {
	if t.IsDebit() {
		return 0
	}
	return 1
}

// Reconcile orders txns and walks them once, carrying the running balance.
// The input slice is not modified. Empty input gives an empty ledger.
func Reconcile(txns []Transaction, opts ...LedgerOption) []LedgerEntry {
	o := newLedgerOptions(opts...)
	sorted := SortTransactions(txns)

	entries := make([]LedgerEntry, 0, len(sorted))
	running := decimal.Zero
	for _, trx := range sorted {
		running = running.Add(trx.DebitAmount).Sub(trx.CreditAmount)
		entries = append(entries, LedgerEntry{
			Transaction:    trx,
			RunningBalance: running,
			Classification: ClassifyBalance(running, o.epsilon),
		})
	}

	return entries
}

// CustomerLedger is the full reconciliation result for one customer.
type CustomerLedger struct {
	CustomerID     string          `json:"customerId"`
	Entries        []LedgerEntry   `json:"entries"`
	Summary        BalanceSummary  `json:"summary"`
	DroppedRecords []DroppedRecord `json:"droppedRecords"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

// ClosingBalance is the running balance of the last entry, zero for an empty ledger.
func (l CustomerLedger) ClosingBalance() decimal.Decimal {
	if len(l.Entries) == 0 {
		return decimal.Zero
	}
	return l.Entries[len(l.Entries)-1].RunningBalance
}
