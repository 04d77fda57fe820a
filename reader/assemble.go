package reader

import (
	"math"
	"sort"

	"github.com/tsawler/rubrica/internal/textnorm"
	"github.com/tsawler/rubrica/model"
)

// assembleFragments turns the raw spans of one page into fragments in
// reading order: spans are sorted top-to-bottom then left-to-right,
// grouped into lines, and merged into runs of uniform style.
func assembleFragments(spans []span) []model.Fragment {
	if len(spans) == 0 {
		return nil
	}

	sortSpans(spans)

	var frags []model.Fragment
	for _, line := range groupLines(spans) {
		frags = append(frags, mergeLine(line)...)
	}
	return frags
}

// sortSpans orders spans by descending Y, then ascending X. Y values
// within half the larger span size count as the same baseline.
func sortSpans(spans []span) {
	sort.SliceStable(spans, func(i, j int) bool {
		a, b := spans[i], spans[j]
		tol := math.Max(a.size, b.size) * 0.5
		if math.Abs(a.y-b.y) > tol {
			return a.y > b.y
		}
		return a.x < b.x
	})
}

// groupLines splits sorted spans on Y jumps larger than half the
// previous span's size.
func groupLines(spans []span) [][]span {
	var lines [][]span
	current := []span{spans[0]}
	for i := 1; i < len(spans); i++ {
		prev := spans[i-1]
		if math.Abs(spans[i].y-prev.y) <= prev.size*0.5 {
			current = append(current, spans[i])
			continue
		}
		lines = append(lines, current)
		current = []span{spans[i]}
	}
	return append(lines, current)
}

// mergeLine joins neighbouring spans that share a style. A style break
// is a size change above half a point or a change in boldness.
func mergeLine(line []span) []model.Fragment {
	var frags []model.Fragment

	first := line[0]
	text := first.text
	endX := first.x + first.width

	flush := func() {
		if cleaned := textnorm.Clean(text); cleaned != "" {
			frags = append(frags, model.Fragment{
				Text:   cleaned,
				X:      first.x,
				Y:      first.y,
				Width:  endX - first.x,
				Height: first.size,
				Font:   first.font.name,
				Size:   first.size,
				Bold:   first.font.bold,
			})
		}
	}

	for _, sp := range line[1:] {
		sameStyle := sp.font.bold == first.font.bold &&
			math.Abs(sp.size-first.size) <= 0.5
		if !sameStyle {
			flush()
			first = sp
			text = sp.text
			endX = sp.x + sp.width
			continue
		}
		if spaceGap(sp.x-endX, sp.size) {
			text += " "
		}
		text += sp.text
		if x := sp.x + sp.width; x > endX {
			endX = x
		}
	}
	flush()

	return frags
}

// spaceGap reports whether the horizontal gap between two same-line
// spans is a word boundary. The space width is estimated as a quarter
// of the font size and a space is inserted when the gap reaches half
// of it. Overlapping or nearly touching spans never get one.
func spaceGap(gap, size float64) bool {
	if gap < size*0.05 {
		return false
	}
	return gap >= size*0.25*0.5
}
