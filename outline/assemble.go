package outline

import (
	"sort"

	"github.com/tsawler/rubrica/internal/textnorm"
	"github.com/tsawler/rubrica/model"
)

// assemble merges the resolved title and the leveled candidates into
// the final result. Candidates matching the title on its page are
// dropped, identical text on the same page collapses to its first
// occurrence, and entries are ordered by page with document order
// preserved within a page. Level never reorders entries.
func assemble(title resolvedTitle, cands []Candidate) model.Result {
	res := model.EmptyResult()
	res.Title = title.text

	type pageKey struct {
		page int
		key  string
	}
	seen := make(map[pageKey]bool, len(cands))

	entries := make([]model.Entry, 0, len(cands))
	for _, c := range cands {
		key := textnorm.Key(c.Fragment.Text)

		if title.key != "" && key == title.key && c.Fragment.Page == title.page {
			continue
		}

		pk := pageKey{page: c.Fragment.Page, key: key}
		if seen[pk] {
			continue
		}
		seen[pk] = true

		entries = append(entries, model.Entry{
			Level: c.Level,
			Text:  c.Fragment.Text,
			Page:  c.Fragment.Page,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Page < entries[j].Page
	})

	res.Outline = entries
	return res
}
