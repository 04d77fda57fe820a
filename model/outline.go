package model

import (
	"encoding/json"
	"fmt"
)

// Level represents the hierarchical depth of a heading (H1-H3).
type Level int

const (
	H1 Level = iota + 1 // main title/chapter
	H2                  // major section
	H3                  // subsection
)

// Valid reports whether the level is within the H1-H3 range.
func (l Level) Valid() bool {
	return l >= H1 && l <= H3
}

// String returns the level label, e.g. "H2".
func (l Level) String() string {
	return fmt.Sprintf("H%d", int(l))
}

// MarshalJSON encodes the level as its label string. Levels outside H1-H3
// fail to marshal; the output contract admits no other values.
func (l Level) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("heading level %d out of range", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level label string.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = H1
	case "H2":
		*l = H2
	case "H3":
		*l = H3
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}

// ClampLevel converts a 1-based depth to a Level, clamped to the H1-H3
// range. Depths past 3 fold into H3; levels below 1 become H1.
func ClampLevel(depth int) Level {
	if depth < int(H1) {
		return H1
	}
	if depth > int(H3) {
		return H3
	}
	return Level(depth)
}

// Entry is one outline record. Entries are immutable once assembled and
// ordered by (page ascending, then original document order within the page).
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"` // 1-based physical page number
}

// Result is the externally visible output for one document. Title may be
// empty when no confident guess exists; Outline may be empty but never
// serializes to JSON null.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// EmptyResult returns the canonical empty result: no title, zero-length
// (non-nil) outline. It is the fallback value for failed extractions.
func EmptyResult() Result {
	return Result{Outline: []Entry{}}
}

// MarshalJSON guarantees the outline field is an array even when nil.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	p := plain(r)
	if p.Outline == nil {
		p.Outline = []Entry{}
	}
	return json.Marshal(p)
}
