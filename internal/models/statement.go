package models

import "fmt"

var StatementCSVHeader = []string{
	"date", "kind", "description", "debit", "credit", "running_balance", "classification", "source_id",
}

// ToCSVRow renders one ledger line in the column order of StatementCSVHeader.
func (e LedgerEntry) ToCSVRow() []string {
	return []string{
		FormatDate(e.Date),
		string(e.Kind),
		e.Description,
		e.DebitAmount.StringFixed(2),
		e.CreditAmount.StringFixed(2),
		e.RunningBalance.StringFixed(2),
		string(e.Classification),
		e.SourceID,
	}
}

// ToCSVRows renders the whole ledger, header first.
func (l CustomerLedger) ToCSVRows() [][]string {
	rows := make([][]string, 0, len(l.Entries)+1)
	rows = append(rows, StatementCSVHeader)
	for _, e := range l.Entries {
		rows = append(rows, e.ToCSVRow())
	}
	return rows
}

// StatementObjectPath is where the statement of one customer for one date is stored.
func StatementObjectPath(basePath, date, customerID string) string {
	return fmt.Sprintf("%s/%s/%s.csv", basePath, date, customerID)
}

type StatementExportResult struct {
	Date      string
	Exported  int
	Failed    int
	Customers int
}
