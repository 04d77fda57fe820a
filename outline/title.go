package outline

import (
	"strings"

	"github.com/tsawler/rubrica/internal/textnorm"
	"github.com/tsawler/rubrica/model"
)

// resolvedTitle carries the chosen title plus the page and normalized
// key needed to keep it out of the outline. A zero value means no
// title was found.
type resolvedTitle struct {
	text string
	page int
	key  string
}

// resolveTitle walks the fallback chain: usable metadata, then the
// most prominent non-candidate text on page 1, then the best heading
// candidate on page 1, then nothing. The system never fabricates a
// title.
func resolveTitle(doc *model.Document, cands []Candidate, base Baseline, furniture map[string]bool) resolvedTitle {
	if t := metadataTitle(doc); t != "" {
		// Metadata titles count as page 1 for outline exclusion.
		return resolvedTitle{text: t, page: 1, key: textnorm.Key(t)}
	}

	if f, ok := prominentTitle(doc, cands, base, furniture); ok {
		return resolvedTitle{text: f.Text, page: f.Page, key: textnorm.Key(f.Text)}
	}

	if c, ok := bestPageOneCandidate(cands); ok {
		f := c.Fragment
		return resolvedTitle{text: f.Text, page: f.Page, key: textnorm.Key(f.Text)}
	}

	return resolvedTitle{}
}

// metadataTitle returns the document information title unless it is
// empty, a placeholder, or derived from the file name.
func metadataTitle(doc *model.Document) string {
	t := textnorm.Clean(doc.Metadata.Title)
	if t == "" || genericTitle(t, doc.Source) {
		return ""
	}
	return t
}

// genericTitle rejects metadata titles that carry no information:
// placeholders, filename lookalikes, and producer banners.
func genericTitle(title, source string) bool {
	key := textnorm.Key(title)

	switch key {
	case "untitled", "unknown", "document", "title", "slide 1":
		return true
	}

	for _, ext := range []string{".pdf", ".doc", ".docx", ".tex", ".indd"} {
		if strings.HasSuffix(key, ext) {
			return true
		}
	}

	if source != "" {
		stem := textnorm.Key(source)
		if key == stem || key == stem+".pdf" {
			return true
		}
	}

	// "Microsoft Word - report.doc" style export banners.
	if strings.HasPrefix(key, "microsoft word -") || strings.HasPrefix(key, "microsoft powerpoint -") {
		return true
	}

	return false
}

// prominentTitle finds the largest page-1 fragment that is above the
// vertical midpoint, larger than body text, and not itself a heading
// candidate or furniture. Ties go to the earlier fragment in reading
// order.
func prominentTitle(doc *model.Document, cands []Candidate, base Baseline, furniture map[string]bool) (model.Fragment, bool) {
	page := doc.GetPage(1)
	if page == nil {
		return model.Fragment{}, false
	}

	// Page-1 fragments occupy the head of the document-order stream,
	// so candidate indexes address them directly.
	isCandidate := make(map[int]bool, len(cands))
	for _, c := range cands {
		if c.Fragment.Page == 1 {
			isCandidate[c.Index] = true
		}
	}

	mid := page.Height / 2
	best := -1
	for i, f := range page.Fragments {
		if isCandidate[i] || furniture[textnorm.Key(f.Text)] {
			continue
		}
		if f.Size <= base.BodySize || f.Y <= mid {
			continue
		}
		if best == -1 || f.Size > page.Fragments[best].Size {
			best = i
		}
	}
	if best < 0 {
		return model.Fragment{}, false
	}
	return page.Fragments[best], true
}

// bestPageOneCandidate returns the highest-scoring candidate on page 1,
// earliest first on ties.
func bestPageOneCandidate(cands []Candidate) (Candidate, bool) {
	best := -1
	for i, c := range cands {
		if c.Fragment.Page != 1 {
			continue
		}
		if best == -1 || c.Score > cands[best].Score {
			best = i
		}
	}
	if best < 0 {
		return Candidate{}, false
	}
	return cands[best], true
}
