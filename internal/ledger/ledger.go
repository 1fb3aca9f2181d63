package ledger

import "github.com/shopspring/decimal"

// Record is one persisted ledger row. InvoiceNo is the dedup key and stays
// unique across all non-aggregate rows; Serial is 1-based and recomputed on
// every save. Comment is operator-owned and never auto-populated.
type Record struct {
	Serial      int
	InvoiceDate string
	InvoiceNo   string
	RefNo       string
	Particular  string
	Amount      decimal.Decimal
	TDS         decimal.Decimal
	ClearAmount decimal.Decimal
	Comment     string
}

// Total is the aggregate over a record set, backing the TOTAL row.
type Total struct {
	Amount decimal.Decimal
	TDS    decimal.Decimal
}

// ComputeTotal sums amount and TDS over all records from scratch. The TOTAL
// row is always derived this way, never updated incrementally, so a stale or
// malformed prior aggregate cannot drift into the next save.
func ComputeTotal(records []Record) Total {
	amount := decimal.Zero
	tds := decimal.Zero
	for _, r := range records {
		amount = amount.Add(r.Amount)
		tds = tds.Add(r.TDS)
	}
	return Total{Amount: amount.Round(2), TDS: tds.Round(2)}
}
