package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractParticularRangeCompression(t *testing.T) {
	text := "LPA No. 1 of 2023 before the Delhi High Court " +
		"LPA No. 2 of 2023 before the Delhi High Court " +
		"LPA No. 3 of 2023 before the Delhi High Court " +
		"LPA No. 5 of 2023 before the Delhi High Court " +
		"LPA No. 7 of 2023 before the Delhi High Court " +
		"LPA No. 8 of 2023 before the Delhi High Court " +
		"LPA No. 9 of 2023 before the Delhi High Court"

	got := ExtractParticular(text)

	assert.Equal(t, "Lpa No. 1-3, 5, 7-9 of 2023 before the Delhi High Court", got)
}

func TestExtractParticularSingleNumber(t *testing.T) {
	text := "LPA No. 42 of 2023 before the Delhi High Court"

	got := ExtractParticular(text)

	assert.Equal(t, "Lpa No. 42 of 2023 before the Delhi High Court", got)
}

func TestExtractParticularNoMentions(t *testing.T) {
	assert.Equal(t, "", ExtractParticular("Consulting services for October 2025, total 5,000.00"))
	assert.Equal(t, "", ExtractParticular(""))
}

func TestExtractParticularDeduplicates(t *testing.T) {
	text := "LPA No. 5 of 2023 before the Delhi High Court and again " +
		"LPA No. 5 of 2023 before the Delhi High Court"

	got := ExtractParticular(text)

	assert.Equal(t, "Lpa No. 5 of 2023 before the Delhi High Court", got)
}

func TestExtractParticularGroupsByCourt(t *testing.T) {
	text := "FAO No. 10 of 2024 before the Delhi High Court " +
		"FAO No. 11 of 2024 before the Delhi High Court " +
		"FAO No. 12 of 2024 before the Bombay High Court"

	got := ExtractParticular(text)

	// Identical (case type, year, court) merge; a different court splits.
	// Groups render in first-encounter order.
	assert.Equal(t,
		"Fao No. 10-11 of 2024 before the Delhi High Court; "+
			"Fao No. 12 of 2024 before the Bombay High Court",
		got)
}

func TestExtractParticularCaseInsensitiveWithVenue(t *testing.T) {
	text := "writ petition (c) no. 7 of 2021 filed before the High Court at Delhi"

	got := ExtractParticular(text)

	assert.Equal(t, "Writ Petition (C) No. 7 of 2021 before the High Court at Delhi", got)
}

func TestExtractParticularCorruptCourtWordSkipped(t *testing.T) {
	// OCR damage to the word "Court" means the mention simply fails to match.
	text := "OMP No. 3 of 2022 before the Delhi High C0urt"

	assert.Equal(t, "", ExtractParticular(text))
}

func TestCompressRanges(t *testing.T) {
	assert.Equal(t, []string{"1-3", "5", "7-9"}, compressRanges([]int{1, 2, 3, 5, 7, 8, 9}))
	assert.Equal(t, []string{"42"}, compressRanges([]int{42}))
	assert.Equal(t, []string{"1-2"}, compressRanges([]int{1, 2}))
	assert.Nil(t, compressRanges(nil))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Writ Petition (C)", titleCase("WRIT PETITION (C)"))
	assert.Equal(t, "Cs (Comm)", titleCase("CS (COMM)"))
	assert.Equal(t, "Arb.P", titleCase("ARB.P"))
}
