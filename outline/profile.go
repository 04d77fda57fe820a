package outline

import (
	"math"
	"sort"

	"github.com/tsawler/rubrica/model"
)

// Baseline holds the document-wide style statistics that fragments are
// judged against. It is computed once, before any fragment is scored.
type Baseline struct {
	// BodySize is the dominant font size, weighted by character count
	// so a banner in huge type cannot outvote the running text.
	BodySize float64

	// LargerSizes lists the distinct bucketed sizes above BodySize in
	// descending order.
	LargerSizes []float64

	// Weights maps each bucketed size to its total character count.
	Weights map[float64]int

	// MedianLine is the median rune count of body-sized fragments,
	// the reference for the brevity and prose signals.
	MedianLine int
}

// Sparse reports whether the document lacks enough size variety for
// size-ranked level assignment. Downstream stages fall back to
// boldness and numbering depth.
func (b Baseline) Sparse() bool {
	return len(b.LargerSizes) < 2
}

// bucketSize rounds a font size to the half-point grid, absorbing the
// subpoint jitter PDF producers emit for one nominal size.
func bucketSize(s float64) float64 {
	return math.Round(s*2) / 2
}

// Profile computes the style baseline over all fragments of one
// document.
func Profile(frags []model.Fragment) Baseline {
	base := Baseline{Weights: make(map[float64]int)}
	if len(frags) == 0 {
		return base
	}

	for _, f := range frags {
		base.Weights[bucketSize(f.Size)] += f.RuneCount()
	}

	sizes := make([]float64, 0, len(base.Weights))
	for s := range base.Weights {
		sizes = append(sizes, s)
	}
	sort.Float64s(sizes)

	// Highest weight wins the baseline; a tie goes to the larger size,
	// which keeps the candidate pool smaller.
	for _, s := range sizes {
		if base.Weights[s] >= base.Weights[base.BodySize] {
			base.BodySize = s
		}
	}

	for i := len(sizes) - 1; i >= 0; i-- {
		if sizes[i] > base.BodySize {
			base.LargerSizes = append(base.LargerSizes, sizes[i])
		}
	}

	var bodyLines []int
	for _, f := range frags {
		if bucketSize(f.Size) == base.BodySize {
			bodyLines = append(bodyLines, f.RuneCount())
		}
	}
	sort.Ints(bodyLines)
	if n := len(bodyLines); n > 0 {
		base.MedianLine = bodyLines[n/2]
	}

	return base
}
