package outline

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// "1.", "1.1", "2.3.1 " and so on. A bare number with no dot does
	// not count, or every year and figure reference would match.
	decimalNumbering = regexp.MustCompile(`^\d+\.(\d+(\.\d+)*\.?)?\s+`)

	romanNumbering  = regexp.MustCompile(`^[IVXLCDM]+\.\s+`)
	letterNumbering = regexp.MustCompile(`^[A-Z]\.\s+`)

	// "Chapter 3", "Part II", "Appendix A".
	wordNumbering = regexp.MustCompile(`^(?i)(chapter|section|part|appendix)\s+([0-9]+|[ivxlcdm]+|[a-z])\b`)

	bulletPrefix = regexp.MustCompile(`^[-*•◦▪‣]\s+`)
)

// hasNumbering reports whether text opens with a section number.
func hasNumbering(text string) bool {
	return decimalNumbering.MatchString(text) ||
		romanNumbering.MatchString(text) ||
		letterNumbering.MatchString(text) ||
		wordNumbering.MatchString(text)
}

// numberingDepth returns the hierarchy depth of a leading decimal
// section number: "1." is 1, "1.1" is 2, "1.1.1" is 3. Roman, letter
// and word prefixes count as depth 1. Zero means no numbering.
func numberingDepth(text string) int {
	if m := decimalNumbering.FindString(text); m != "" {
		m = strings.TrimRight(strings.TrimSpace(m), ".")
		return strings.Count(m, ".") + 1
	}
	if romanNumbering.MatchString(text) ||
		letterNumbering.MatchString(text) ||
		wordNumbering.MatchString(text) {
		return 1
	}
	return 0
}

// isBulleted reports a leading list marker.
func isBulleted(text string) bool {
	return bulletPrefix.MatchString(text)
}

// isAllCaps reports text whose letters are at least 90% uppercase,
// with a minimum of three letters so initialisms in short labels do
// not trigger it.
func isAllCaps(text string) bool {
	letters, upper := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return letters >= 3 && upper*10 >= letters*9
}

// endsSentence reports text ending in a sentence terminator.
func endsSentence(text string) bool {
	trimmed := strings.TrimRight(text, " ")
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?', ';', ',':
		return true
	}
	return false
}
