package extract

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// groupKey identifies one citation group: mentions that differ only in case
// number collapse into a single rendering.
type groupKey struct {
	caseType string // uppercased
	year     string
	court    string // trimmed
}

// ExtractParticular scans normalized text for case-citation mentions, groups
// them by (case type, year, court), compresses consecutive case numbers into
// ranges, and renders the groups joined by "; " in first-encounter order.
// A document with no citations yields "" — common for non-legal invoices,
// not an error.
func ExtractParticular(text string) string {
	matches := reCitation.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}

	grouped := make(map[groupKey][]int)
	var order []groupKey
	for _, m := range matches {
		n, err := strconv.Atoi(m[2])
		if err != nil || n <= 0 {
			continue
		}
		key := groupKey{
			caseType: strings.ToUpper(m[1]),
			year:     m[3],
			court:    strings.TrimSpace(m[4]),
		}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], n)
	}

	parts := make([]string, 0, len(order))
	for _, key := range order {
		ranges := compressRanges(sortedUnique(grouped[key]))
		parts = append(parts, fmt.Sprintf("%s No. %s of %s before the %s",
			titleCase(key.caseType), strings.Join(ranges, ", "), key.year, key.court))
	}
	return strings.Join(parts, "; ")
}

func sortedUnique(nums []int) []int {
	sort.Ints(nums)
	out := nums[:0]
	for i, n := range nums {
		if i == 0 || n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}

// compressRanges collapses runs of consecutive integers in an ascending,
// deduplicated slice: {1,2,3,5} -> ["1-3", "5"]. Isolated numbers render
// without a dash.
func compressRanges(nums []int) []string {
	if len(nums) == 0 {
		return nil
	}
	var ranges []string
	start, prev := nums[0], nums[0]
	flush := func() {
		if start == prev {
			ranges = append(ranges, strconv.Itoa(start))
		} else {
			ranges = append(ranges, fmt.Sprintf("%d-%d", start, prev))
		}
	}
	for _, n := range nums[1:] {
		if n == prev+1 {
			prev = n
			continue
		}
		flush()
		start, prev = n, n
	}
	flush()
	return ranges
}

// titleCase uppercases the first letter of every alphabetic run and
// lowercases the rest, leaving non-letters alone:
// "WRIT PETITION (C)" -> "Writ Petition (C)", "ARB.P" -> "Arb.P".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
