package extract

import (
	"github.com/shopspring/decimal"

	"github.com/akshat-khanna/invoice-ledger/internal/common"
	"github.com/akshat-khanna/invoice-ledger/internal/ledger"
)

var (
	tdsRate   = decimal.NewFromFloat(0.10)
	clearRate = decimal.NewFromFloat(0.90)
)

// Assemble builds a candidate ledger record from normalized document text.
// The invoice number is the longest candidate token; on equal length the
// first occurrence in scan order wins. Date, reference, particular, and
// amount are all optional — a missing invoice number is the only rejection,
// reported as common.ErrNoInvoiceNumber.
//
// Serial is left zero; the synchronizer assigns it at append time.
func Assemble(text string) (ledger.Record, error) {
	tokens := reInvoiceToken.FindAllString(text, -1)
	if len(tokens) == 0 {
		return ledger.Record{}, common.ErrNoInvoiceNumber
	}
	inv := tokens[0]
	for _, t := range tokens[1:] {
		if len(t) > len(inv) {
			inv = t
		}
	}

	rec := ledger.Record{
		InvoiceNo:   inv,
		InvoiceDate: reInvoiceDate.FindString(text),
		Particular:  ExtractParticular(text),
		Amount:      ExtractAmount(text),
	}
	if m := reReference.FindStringSubmatch(text); m != nil {
		rec.RefNo = m[2]
	}
	rec.TDS = rec.Amount.Mul(tdsRate).Round(2)
	rec.ClearAmount = rec.Amount.Mul(clearRate).Round(2)
	return rec, nil
}
