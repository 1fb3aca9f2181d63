package textextract

import (
	"regexp"
	"strings"
)

var reWhitespace = regexp.MustCompile(`[\s\p{Cc}]+`)

// Normalize collapses every whitespace run (newlines, tabs, control
// characters) to a single space and trims the ends, so the extractors see
// one flat line per document.
func Normalize(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
