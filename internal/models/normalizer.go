package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DropReasonNonPositiveAmount     = "non_positive_amount"
	DropReasonUnknownAdjustmentType = "unknown_adjustment_type"
)

// DroppedRecord describes a source record the normalizer refused.
type DroppedRecord struct {
	Kind     string `json:"kind"`
	SourceID string `json:"sourceId"`
	Reason   string `json:"reason"`
}

type NormalizeResult struct {
	Transactions []Transaction
	Dropped      []DroppedRecord
}

// NormalizeTransactions turns the three record kinds of one customer into
// transactions. Malformed records are reported in Dropped and never abort the
// rest. Records without a date keep the zero time so they sort first.
func NormalizeTransactions(orders []Order, payments []Payment, adjustments []Adjustment) NormalizeResult {
	res := NormalizeResult{
		Transactions: make([]Transaction, 0, len(orders)+len(payments)+len(adjustments)),
	}

	for _, o := range orders {
		if !o.TotalValue.IsPositive() {
			res.drop(RecordKindOrder, o.ID, DropReasonNonPositiveAmount)
			continue
		}
		res.Transactions = append(res.Transactions, Transaction{
			Date:         o.OrderDate,
			Kind:         TransactionKindOrder,
			Description:  orderDescription(o),
			DebitAmount:  o.TotalValue,
			CreditAmount: decimal.Zero,
			SourceID:     o.ID,
		})
	}

	for _, p := range payments {
		if !p.Amount.IsPositive() {
			res.drop(RecordKindPayment, p.ID, DropReasonNonPositiveAmount)
			continue
		}
		res.Transactions = append(res.Transactions, Transaction{
			Date:         p.PaidAt,
			Kind:         TransactionKindPayment,
			Description:  paymentDescription(p),
			DebitAmount:  decimal.Zero,
			CreditAmount: p.Amount,
			SourceID:     p.ID,
		})
	}

	for _, a := range adjustments {
		if !a.Amount.IsPositive() {
			res.drop(RecordKindAdjustment, a.ID, DropReasonNonPositiveAmount)
			continue
		}

		trx := Transaction{
			Date:         a.AdjustedAt,
			Description:  adjustmentDescription(a),
			DebitAmount:  decimal.Zero,
			CreditAmount: decimal.Zero,
			SourceID:     a.ID,
		}
		switch a.Type {
		case AdjustmentTypeDebit:
			trx.Kind = TransactionKindAdjustmentDebit
			trx.DebitAmount = a.Amount
		case AdjustmentTypeCredit:
			trx.Kind = TransactionKindAdjustmentCredit
			trx.CreditAmount = a.Amount
		default:
			res.drop(RecordKindAdjustment, a.ID, DropReasonUnknownAdjustmentType)
			continue
		}
		res.Transactions = append(res.Transactions, trx)
	}

	return res
}

func (r *NormalizeResult) drop(kind, sourceID, reason string) {
	r.Dropped = append(r.Dropped, DroppedRecord{Kind: kind, SourceID: sourceID, Reason: reason})
}

func orderDescription(o Order) string {
	if o.DisplayID == "" {
		return "Order " + o.ID
	}
	return "Order " + o.DisplayID
}

func paymentDescription(p Payment) string {
	desc := "Payment"
	if p.Method != "" {
		desc = fmt.Sprintf("Payment via %s", p.Method)
	}
	if notes := strings.TrimSpace(p.Notes); notes != "" {
		desc += " - " + notes
	}
	return desc
}

func adjustmentDescription(a Adjustment) string {
	desc := fmt.Sprintf("Adjustment (%s)", a.Type)
	if remarks := strings.TrimSpace(a.Remarks); remarks != "" {
		desc += ": " + remarks
	}
	return desc
}
