package extract

import (
	"regexp"
	"strings"
)

// caseTypePatterns are the recognized case-type tokens, in match order.
// Editing this list changes which citations are recognized; everything else
// about citation parsing is driven by reCitation below.
var caseTypePatterns = []string{
	`Writ Petition\s*\(C\)`,
	`CS\s*\(COMM\)`,
	`LPA`,
	`IPD`,
	`FAO`,
	`RFA`,
	`CM`,
	`ARB\.?P`,
	`OMP`,
}

// reCitation matches one case-citation mention:
// "<case type> No. <n> of <yyyy> ... before the <court>", with arbitrary
// text between the year and the court clause. The court phrase must end in
// "Court", optionally followed by "at <place>".
var reCitation = regexp.MustCompile(
	`(?i)(` + strings.Join(caseTypePatterns, "|") + `)` +
		`\s*No\.?\s*(\d+)\s*of\s*(\d{4})` +
		`.*?before\s+the\s+([A-Za-z\s]+Court(?:\s+at\s+[A-Za-z\s]+)?)`)

// amountPatterns is the ordered monetary-total cascade, most specific label
// first. The label and the value need not be adjacent; the first pattern
// that matches anywhere in the text wins.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Total\s*Invoice\s*Value.*?([0-9,]+\.\d{2})`),
	regexp.MustCompile(`(?i)Grand\s*Total.*?([0-9,]+\.\d{2})`),
	regexp.MustCompile(`(?i)Total\s*Amount.*?([0-9,]+\.\d{2})`),
}

var (
	// reInvoiceDate matches dates like 15-Jan-2026.
	reInvoiceDate = regexp.MustCompile(`\d{1,2}-[A-Za-z]{3}-\d{4}`)

	// reInvoiceToken matches maximal uppercase-alphanumeric runs of length >= 6,
	// the candidate invoice numbers.
	reInvoiceToken = regexp.MustCompile(`\b[A-Z0-9]{6,}\b`)

	// reReference matches a labeled reference number, value in group 2.
	reReference = regexp.MustCompile(`(?i)(Our\s*Ref|Ref)\s*[:\-]?\s*([A-Z0-9/\-]+)`)
)
