package outline

import (
	"github.com/tsawler/rubrica/internal/textnorm"
	"github.com/tsawler/rubrica/model"
)

// Engine runs the extraction pipeline over one document at a time.
// It is stateless between calls and safe for concurrent use.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Extract turns a document into its title and outline. Stages run in
// fixed order: profile, furniture scan, detection, title resolution,
// level assignment, assembly. A document with nothing heading-like
// yields an empty outline, never an error.
func (e *Engine) Extract(doc *model.Document) model.Result {
	if doc == nil {
		return model.EmptyResult()
	}

	frags := doc.Fragments()
	base := Profile(frags)
	furniture := furnitureKeys(doc, e.cfg)

	cands := NewDetector(e.cfg, base).Detect(frags, furniture)
	title := resolveTitle(doc, cands, base, furniture)

	// The title is not a heading. Dropping its candidate before sizes
	// are ranked keeps it from occupying the H1 slot.
	if title.key != "" {
		kept := cands[:0]
		for _, c := range cands {
			if c.Fragment.Page == title.page && textnorm.Key(c.Fragment.Text) == title.key {
				continue
			}
			kept = append(kept, c)
		}
		cands = kept
	}

	cands = assignLevels(cands, base)
	return assemble(title, cands)
}
