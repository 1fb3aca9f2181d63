package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractAmountCascadePrecedence(t *testing.T) {
	// "Total Invoice Value" outranks "Grand Total" regardless of position.
	text := "Grand Total ............ 9,999.99 " +
		"Total Invoice Value (incl. GST) 1,234.56"

	got := ExtractAmount(text)

	assert.True(t, got.Equal(decimal.RequireFromString("1234.56")), "got %s", got)
}

func TestExtractAmountLabelAndValueSeparated(t *testing.T) {
	text := "Total Amount payable in Indian Rupees only: Rs. 500.00"

	got := ExtractAmount(text)

	assert.True(t, got.Equal(decimal.RequireFromString("500.00")), "got %s", got)
}

func TestExtractAmountStripsThousandsSeparators(t *testing.T) {
	text := "Grand Total 12,34,567.89"

	got := ExtractAmount(text)

	assert.True(t, got.Equal(decimal.RequireFromString("1234567.89")), "got %s", got)
}

func TestExtractAmountCaseInsensitive(t *testing.T) {
	text := "GRAND TOTAL 250.50"

	got := ExtractAmount(text)

	assert.True(t, got.Equal(decimal.RequireFromString("250.50")), "got %s", got)
}

func TestExtractAmountNoMatchIsZero(t *testing.T) {
	// Zero is the "no recognizable total" sentinel, not an error.
	got := ExtractAmount("Thank you for your business")

	assert.True(t, got.IsZero())
}
