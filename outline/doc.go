// Package outline turns the fragments of one document into a title
// and a leveled heading outline.
//
// The pipeline runs in a fixed order. Profile computes the body-text
// baseline from a character-weighted font-size histogram. The Detector
// scores every fragment against that baseline with additive signals
// (size ratio, boldness, isolation, brevity, lexical shape) and keeps
// the ones that clear the threshold. The title resolver walks its
// fallback chain (metadata, most prominent first-page text, best
// first-page candidate). Level assignment ranks the distinct candidate
// sizes into H1/H2/H3, falling back to numbering depth when size
// cannot discriminate. Assembly deduplicates, excludes the title and
// orders entries by page.
//
// Every stage is a pure function over its inputs; extracting the same
// document twice yields identical results.
//
//	engine := outline.NewEngine(outline.DefaultConfig())
//	result := engine.Extract(doc)
package outline
