package outline

import (
	"sort"

	"github.com/tsawler/rubrica/model"
)

// Half a bucket of slack when comparing bucketed sizes to ranks.
const sizeEpsilon = 0.01

// assignLevels annotates every candidate with H1, H2 or H3. With
// enough size variety the distinct candidate sizes are ranked largest
// first and each candidate takes the level of the nearest rank at or
// below its own size, clamped to H3. Sparse documents fall back to
// numbering depth.
func assignLevels(cands []Candidate, base Baseline) []Candidate {
	if len(cands) == 0 {
		return cands
	}
	if base.Sparse() {
		return assignFallbackLevels(cands)
	}

	ranks := candidateSizeRanks(cands)
	for i := range cands {
		cands[i].Level = levelForSize(bucketSize(cands[i].Fragment.Size), ranks)
	}
	return cands
}

// candidateSizeRanks returns the distinct bucketed candidate sizes in
// descending order, capped at three.
func candidateSizeRanks(cands []Candidate) []float64 {
	seen := make(map[float64]bool)
	for _, c := range cands {
		seen[bucketSize(c.Fragment.Size)] = true
	}

	sizes := make([]float64, 0, len(seen))
	for s := range seen {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	if len(sizes) > 3 {
		sizes = sizes[:3]
	}
	return sizes
}

// levelForSize maps a bucketed size onto the ranks: the first rank the
// size reaches sets the level, anything below every rank is H3.
func levelForSize(size float64, ranks []float64) model.Level {
	for i, r := range ranks {
		if size >= r-sizeEpsilon {
			return model.ClampLevel(i + 1)
		}
	}
	return model.H3
}

// assignFallbackLevels levels candidates by numbering depth when size
// cannot discriminate: "1." is H1, "1.1" is H2, "1.1.1" and deeper is
// H3. Unnumbered candidates stay at the top level.
func assignFallbackLevels(cands []Candidate) []Candidate {
	for i := range cands {
		depth := numberingDepth(cands[i].Fragment.Text)
		if depth == 0 {
			depth = 1
		}
		cands[i].Level = model.ClampLevel(depth)
	}
	return cands
}
