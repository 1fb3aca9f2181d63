package constants

// SheetName is the worksheet holding the invoice table.
const SheetName = "Invoices"

// TotalMarker is the Particular value of the aggregate row.
const TotalMarker = "TOTAL"

// LedgerHeaders is the canonical header row of the ledger store.
// A persisted file whose first row differs is treated as corrupt and reset.
var LedgerHeaders = []string{
	"Sr.No",
	"Invoice Date",
	"Invoice No",
	"Ref No",
	"Particular",
	"Amount",
	"TDS (10%)",
	"Clear Amount",
	"Comment",
}
