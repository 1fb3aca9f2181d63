package ledger

// Result says how the synchronizer routed a candidate record.
type Result int

const (
	Appended Result = iota
	DuplicateSkipped
)

func (r Result) String() string {
	switch r {
	case Appended:
		return "APPENDED"
	case DuplicateSkipped:
		return "DUPLICATE_SKIPPED"
	default:
		return "UNKNOWN"
	}
}

// Synchronize checks the candidate's invoice number against the existing
// records and appends it when novel, assigning the next serial. On the
// duplicate path the input slice is returned unchanged and the candidate is
// discarded. The TOTAL row is never part of the record slice; the store
// derives it on save.
func Synchronize(records []Record, candidate Record) ([]Record, Result) {
	for _, r := range records {
		if r.InvoiceNo == candidate.InvoiceNo {
			return records, DuplicateSkipped
		}
	}
	candidate.Serial = len(records) + 1
	return append(records, candidate), Appended
}
