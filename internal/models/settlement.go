package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/printhaus/go-shop-finance/internal/common"
)

// SettlementCSVHeader is the expected first row of a bank settlement file.
var SettlementCSVHeader = []string{"reference", "customer_id", "amount", "paid_at", "notes"}

// SettlementRow is one settled payment from the bank file. Rows are staged
// locally keyed by Reference before they are recorded.
type SettlementRow struct {
	Reference  string          `json:"reference"`
	CustomerID string          `json:"customerId"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     time.Time       `json:"paidAt"`
	Notes      string          `json:"notes"`
	Line       int             `json:"line"`
}

func IsSettlementHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), SettlementCSVHeader[0])
}

// ParseSettlementRow reads one CSV record. A blank paid_at keeps the zero time.
func ParseSettlementRow(record []string, line int, loc *time.Location) (SettlementRow, error) {
	if len(record) < 3 {
		return SettlementRow{}, fmt.Errorf("line %d: %w", line, common.ErrCSVRowIsEmpty)
	}

	get := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	row := SettlementRow{
		Reference:  get(0),
		CustomerID: get(1),
		Notes:      get(4),
		Line:       line,
	}
	if row.Reference == "" || row.CustomerID == "" {
		return SettlementRow{}, fmt.Errorf("line %d: reference and customer_id are required", line)
	}

	amount, err := decimal.NewFromString(get(2))
	if err != nil {
		return SettlementRow{}, fmt.Errorf("line %d: invalid amount %q: %w", line, get(2), err)
	}
	row.Amount = amount

	paidAt, err := ParseDate(get(3), loc, time.Time{})
	if err != nil {
		return SettlementRow{}, fmt.Errorf("line %d: %w", line, err)
	}
	row.PaidAt = paidAt

	return row, nil
}

func (r SettlementRow) ToCreatePaymentIn(method string) CreatePaymentIn {
	return CreatePaymentIn{
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		PaidAt:     r.PaidAt,
		Method:     method,
		Notes:      r.Notes,
		Reference:  r.Reference,
		Source:     PaymentSourceSettlement,
	}
}

type SettlementImportResult struct {
	Date       string
	Rows       int
	Duplicates int
	Invalid    int
	Imported   int
	Failed     int
}

// SettlementObjectPath is where the bank drops the settlement file for one date.
func SettlementObjectPath(basePath, date string) string {
	return fmt.Sprintf("%s/%s.csv", basePath, date)
}
