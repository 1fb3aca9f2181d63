package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExtractAmount applies the monetary-total cascade in order and returns the
// first value found after a label, with thousands separators stripped.
// decimal.Zero means "no recognizable total", a valid outcome rather than an
// error.
func ExtractAmount(text string) decimal.Decimal {
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amt, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		return amt
	}
	return decimal.Zero
}
