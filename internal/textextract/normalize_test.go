package textextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollapsesWhitespaceRuns(t *testing.T) {
	in := "Tax  Invoice\n\nINV001\t\tTotal   Amount\r\n500.00  "

	assert.Equal(t, "Tax Invoice INV001 Total Amount 500.00", Normalize(in))
}

func TestNormalizeStripsControlCharacters(t *testing.T) {
	in := "page one\x0cpage two\x00end"

	assert.Equal(t, "page one page two end", Normalize(in))
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize(" \n\t "))
}
