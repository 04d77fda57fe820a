package outline

import (
	"github.com/tsawler/rubrica/internal/textnorm"
	"github.com/tsawler/rubrica/model"
)

// Candidate is a fragment the detector judged likely to be a heading.
type Candidate struct {
	Fragment model.Fragment

	// Score is the summed signal value that cleared the threshold.
	Score float64

	// Signals names the signals that fired, for diagnostics.
	Signals []string

	// Index is the fragment's position in the document-order stream.
	Index int

	// Level is set by level assignment, zero before that.
	Level model.Level
}

// Detector scores fragments against a document baseline. Signals are
// independent of each other and of any previous decision; the same
// fragment always produces the same score.
type Detector struct {
	cfg  Config
	base Baseline
}

func NewDetector(cfg Config, base Baseline) *Detector {
	return &Detector{cfg: cfg, base: base}
}

// Detect scans fragments in document order and returns the ones whose
// score strictly exceeds the threshold. skip holds the normalized keys
// of page furniture, which is never a candidate.
func (d *Detector) Detect(frags []model.Fragment, skip map[string]bool) []Candidate {
	var cands []Candidate
	for i := range frags {
		if skip[textnorm.Key(frags[i].Text)] {
			continue
		}

		var prev, next *model.Fragment
		if i > 0 {
			prev = &frags[i-1]
		}
		if i+1 < len(frags) {
			next = &frags[i+1]
		}

		score, signals := d.score(frags[i], prev, next)
		if score > d.cfg.Threshold {
			cands = append(cands, Candidate{
				Fragment: frags[i],
				Score:    score,
				Signals:  signals,
				Index:    i,
			})
		}
	}
	return cands
}

func (d *Detector) score(f model.Fragment, prev, next *model.Fragment) (float64, []string) {
	var score float64
	var signals []string

	if s := d.sizeSignal(f); s > 0 {
		score += s
		signals = append(signals, "size")
	}
	if f.Bold {
		score += d.cfg.BoldWeight
		signals = append(signals, "bold")
	}
	if d.isolated(f, prev, next) {
		score += d.cfg.IsolationWeight
		signals = append(signals, "isolation")
	}
	switch {
	case d.shortLine(f):
		score += d.cfg.BrevityWeight
		signals = append(signals, "brevity")
	case d.longLine(f):
		score += d.cfg.LongPenalty
		signals = append(signals, "prose")
	}
	if hasNumbering(f.Text) || isBulleted(f.Text) || isAllCaps(f.Text) {
		score += d.cfg.LexicalWeight
		signals = append(signals, "lexical")
	}
	if endsSentence(f.Text) && !hasNumbering(f.Text) {
		score += d.cfg.PunctPenalty
		signals = append(signals, "terminal")
	}

	return score, signals
}

// sizeSignal grows with the ratio of the fragment size to the body
// size, capped so one enormous banner cannot mask its other defects.
func (d *Detector) sizeSignal(f model.Fragment) float64 {
	if d.base.BodySize <= 0 {
		return 0
	}
	ratio := f.Size / d.base.BodySize
	if ratio <= 1 {
		return 0
	}
	s := d.cfg.SizeWeight * (ratio - 1)
	if s > d.cfg.SizeWeight {
		s = d.cfg.SizeWeight
	}
	return s
}

// isolated reports whether the vertical gap to both same-page
// neighbours exceeds GapFactor times the fragment height. A missing
// neighbour (page start or end) counts as an isolated side.
func (d *Detector) isolated(f model.Fragment, prev, next *model.Fragment) bool {
	gap := d.cfg.GapFactor * f.Height
	if prev != nil && prev.Page == f.Page && prev.Y-f.Y <= gap {
		return false
	}
	if next != nil && next.Page == f.Page && f.Y-next.Y <= gap {
		return false
	}
	return true
}

func (d *Detector) shortLine(f model.Fragment) bool {
	if d.base.MedianLine <= 0 {
		return false
	}
	return float64(f.RuneCount()) < d.cfg.ShortLineRatio*float64(d.base.MedianLine)
}

func (d *Detector) longLine(f model.Fragment) bool {
	n := f.RuneCount()
	if d.cfg.MaxRunes > 0 && n > d.cfg.MaxRunes {
		return true
	}
	if d.base.MedianLine <= 0 {
		return false
	}
	return float64(n) > d.cfg.LongLineRatio*float64(d.base.MedianLine)
}
