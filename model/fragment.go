package model

import "strings"

// Fragment represents one contiguous run of text sharing a single style on
// one page. Fragments are produced in reading order within a page and are
// immutable once created.
type Fragment struct {
	Text   string  // cleaned text content, non-empty after trimming
	Page   int     // page number (1-based)
	X      float64 // left edge in PDF user space
	Y      float64 // vertical position in PDF user space (larger is higher on the page)
	Width  float64
	Height float64 // line height, approximated by the effective font size
	Font   string  // base font name (e.g. "Helvetica-Bold")
	Size   float64 // effective font size in points
	Bold   bool
}

// RuneCount returns the number of runes in the fragment text.
func (f Fragment) RuneCount() int {
	return len([]rune(f.Text))
}

// WordCount returns the number of whitespace-separated words.
func (f Fragment) WordCount() int {
	return len(strings.Fields(f.Text))
}
