package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindOrder            TransactionKind = "Order"
	TransactionKindPayment          TransactionKind = "Payment"
	TransactionKindAdjustmentDebit  TransactionKind = "AdjustmentDebit"
	TransactionKindAdjustmentCredit TransactionKind = "AdjustmentCredit"
)

// Transaction is one normalized money movement of a customer. Exactly one of
// DebitAmount and CreditAmount is nonzero; debits increase what is owed.
type Transaction struct {
	Date         time.Time       `json:"date"`
	Kind         TransactionKind `json:"kind"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	SourceID     string          `json:"sourceId"`
}

func (t Transaction) IsDebit() bool {
	return t.DebitAmount.IsPositive()
}
