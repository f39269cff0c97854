package models

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalComparer() cmp.Option {
	return cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func debit(date time.Time, amount int64, id string) Transaction {
	return Transaction{Date: date, Kind: TransactionKindOrder, DebitAmount: decimal.NewFromInt(amount), CreditAmount: decimal.Zero, SourceID: id}
}

func credit(date time.Time, amount int64, id string) Transaction {
	return Transaction{Date: date, Kind: TransactionKindPayment, DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(amount), SourceID: id}
}

func randomTransactions(r *rand.Rand, n int) []Transaction {
	txns := make([]Transaction, 0, n)
	for i := 0; i < n; i++ {
		// few distinct dates so equal-date ties are frequent
		date := day(1 + r.Intn(5))
		amount := decimal.New(r.Int63n(1_000_000)+1, -2)
		if r.Intn(2) == 0 {
			txns = append(txns, Transaction{Date: date, Kind: TransactionKindOrder, DebitAmount: amount, CreditAmount: decimal.Zero})
		} else {
			txns = append(txns, Transaction{Date: date, Kind: TransactionKindPayment, DebitAmount: decimal.Zero, CreditAmount: amount})
		}
	}
	return txns
}

func TestReconcile_Scenario(t *testing.T) {
	txns := []Transaction{
		debit(day(3), 500, "ORD-2"),
		credit(day(2), 800, "PAY-1"),
		debit(day(1), 1000, "ORD-1"),
	}

	entries := Reconcile(txns)

	want := []LedgerEntry{
		{Transaction: debit(day(1), 1000, "ORD-1"), RunningBalance: decimal.NewFromInt(1000), Classification: BalanceDue},
		{Transaction: credit(day(2), 800, "PAY-1"), RunningBalance: decimal.NewFromInt(200), Classification: BalanceDue},
		{Transaction: debit(day(3), 500, "ORD-2"), RunningBalance: decimal.NewFromInt(700), Classification: BalanceDue},
	}
	if diff := cmp.Diff(want, entries, decimalComparer()); diff != "" {
		t.Errorf("Reconcile() mismatch (-want +got)\n%s", diff)
	}

	summary := Summarize(txns)
	assert.True(t, summary.FinalBalance.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, BalanceDue, summary.Classification)
	assert.Equal(t, "ORD-2", txns[0].SourceID, "input must not be reordered")
}

func TestReconcile_Empty(t *testing.T) {
	entries := Reconcile(nil)
	assert.Empty(t, entries)

	summary := Summarize(nil)
	assert.True(t, summary.FinalBalance.IsZero())
	assert.Equal(t, BalanceZero, summary.Classification)
}

func TestReconcile_DebitBeforeCreditOnSameDate(t *testing.T) {
	d := debit(day(5), 100, "ORD")
	c := credit(day(5), 100, "PAY")

	tests := []struct {
		name string
		in   []Transaction
	}{
		{name: "debit first in input", in: []Transaction{d, c}},
		{name: "credit first in input", in: []Transaction{c, d}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Reconcile(tt.in)
			require.Len(t, entries, 2)
			assert.Equal(t, "ORD", entries[0].SourceID)
			assert.Equal(t, "PAY", entries[1].SourceID)
			assert.Equal(t, BalanceZero, entries[1].Classification)
		})
	}
}

func TestReconcile_StableForEqualKeys(t *testing.T) {
	txns := []Transaction{
		credit(day(2), 10, "PAY-A"),
		debit(day(2), 20, "ORD-A"),
		credit(day(2), 30, "PAY-B"),
		debit(day(2), 40, "ORD-B"),
	}

	got := make([]string, 0, len(txns))
	for _, e := range Reconcile(txns) {
		got = append(got, e.SourceID)
	}

	assert.Equal(t, []string{"ORD-A", "ORD-B", "PAY-A", "PAY-B"}, got)
}

func TestReconcile_ZeroDateSortsFirst(t *testing.T) {
	txns := []Transaction{
		debit(day(1), 100, "ORD-DATED"),
		debit(time.Time{}, 50, "ORD-UNDATED"),
	}

	entries := Reconcile(txns)
	assert.Equal(t, "ORD-UNDATED", entries[0].SourceID)
	assert.True(t, entries[1].RunningBalance.Equal(decimal.NewFromInt(150)))
}

func TestReconcile_RunningBalanceRecurrence(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		entries := Reconcile(randomTransactions(r, r.Intn(40)))
		for i, e := range entries {
			prev := decimal.Zero
			if i > 0 {
				prev = entries[i-1].RunningBalance
			}
			want := prev.Add(e.DebitAmount).Sub(e.CreditAmount)
			require.True(t, e.RunningBalance.Equal(want), "iteration %d entry %d", iter, i)

			if i > 0 {
				require.False(t, e.Date.Before(entries[i-1].Date), "entries must be chronological")
			}
		}
	}
}

func TestSummarize_EqualsLedgerClosingBalance(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for iter := 0; iter < 200; iter++ {
		txns := randomTransactions(r, r.Intn(40))
		ledger := CustomerLedger{Entries: Reconcile(txns)}
		summary := Summarize(txns)

		require.True(t, summary.FinalBalance.Equal(ledger.ClosingBalance()),
			"iteration %d: summary %s ledger %s", iter, summary.FinalBalance, ledger.ClosingBalance())
		require.True(t, summary.FinalBalance.Equal(summary.TotalDebits.Sub(summary.TotalCredits)))
	}
}

func TestClassifyBalance(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		want    BalanceClassification
	}{
		{name: "exact zero", balance: "0", want: BalanceZero},
		{name: "residue below one cent", balance: "0.004", want: BalanceZero},
		{name: "negative residue below one cent", balance: "-0.009", want: BalanceZero},
		{name: "one cent is due", balance: "0.01", want: BalanceDue},
		{name: "minus one cent is credit", balance: "-0.01", want: BalanceCredit},
		{name: "large due", balance: "700", want: BalanceDue},
		{name: "overpaid", balance: "-250.5", want: BalanceCredit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBalance(decimal.RequireFromString(tt.balance), DefaultBalanceEpsilon))
		})
	}
}

func TestReconcile_WithBalanceEpsilon(t *testing.T) {
	txns := []Transaction{debit(day(1), 1, "ORD")}

	assert.Equal(t, BalanceDue, Reconcile(txns)[0].Classification)
	assert.Equal(t, BalanceZero, Reconcile(txns, WithBalanceEpsilon(decimal.NewFromInt(5)))[0].Classification)
	assert.Equal(t, BalanceDue, Reconcile(txns, WithBalanceEpsilon(decimal.Zero))[0].Classification)
}

func TestCustomerLedger_ToCSVRows(t *testing.T) {
	ledger := CustomerLedger{Entries: Reconcile([]Transaction{
		{Date: day(1), Kind: TransactionKindOrder, Description: "Order INV-1", DebitAmount: decimal.NewFromInt(1000), CreditAmount: decimal.Zero, SourceID: "ORD-1"},
	})}

	rows := ledger.ToCSVRows()
	require.Len(t, rows, 2)
	assert.Equal(t, StatementCSVHeader, rows[0])
	assert.Equal(t, []string{"2026-03-01", "Order", "Order INV-1", "1000.00", "0.00", "1000.00", "Due", "ORD-1"}, rows[1])
}
