// Package textnorm normalizes extracted text for output and comparison.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// asciiFold maps typographic punctuation that PDF producers commonly emit
// onto plain ASCII equivalents.
var asciiFold = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"‚", "'",
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"„", `"`,
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
	"�", "", // replacement character
)

// Clean normalizes one run of extracted text: NFKC normalization (folds
// ligatures and fullwidth forms), typographic quotes and dashes mapped to
// ASCII, control characters dropped, whitespace collapsed to single spaces,
// ends trimmed.
func Clean(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)
	s = asciiFold.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case unicode.IsControl(r):
			// dropped
		default:
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Key returns the comparison key for deduplication and title matching:
// cleaned text, lowercased.
func Key(s string) string {
	return strings.ToLower(Clean(s))
}
