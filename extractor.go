package rubrica

import (
	"fmt"

	"github.com/tsawler/rubrica/model"
	"github.com/tsawler/rubrica/outline"
	"github.com/tsawler/rubrica/reader"
)

// Extractor provides a fluent interface for extracting outlines from
// PDF files. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method
// chaining.
type Extractor struct {
	// Source
	filename string

	// Reader
	reader *reader.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options extractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with its own options. This
// ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithConfig replaces the outline engine configuration. Use
// outline.DefaultConfig as a starting point and adjust individual
// weights.
//
// Example:
//
//	cfg := outline.DefaultConfig()
//	cfg.Threshold = 0.7
//	result, err := rubrica.Open("doc.pdf").WithConfig(cfg).Result()
func (e *Extractor) WithConfig(cfg outline.Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = cfg
	return newExt
}

// KeepFurniture disables the repeated header/footer filter, letting
// running headers and footers compete as heading candidates.
//
// Example:
//
//	result, err := rubrica.Open("doc.pdf").KeepFurniture().Result()
func (e *Extractor) KeepFurniture() *Extractor {
	newExt := e.clone()
	newExt.options.config.FurnitureMinPages = 0
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Result extracts the document title and heading outline.
// This is a terminal operation that closes the underlying reader.
//
// The returned Result always has a non-nil Outline; on error it is the
// canonical empty result.
//
// Example:
//
//	result, err := rubrica.Open("manual.pdf").Result()
func (e *Extractor) Result() (model.Result, error) {
	doc, err := e.document()
	if err != nil {
		return model.EmptyResult(), err
	}
	return outline.NewEngine(e.options.config).Extract(doc), nil
}

// Outline extracts just the heading entries.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	entries, err := rubrica.Open("manual.pdf").Outline()
func (e *Extractor) Outline() ([]model.Entry, error) {
	res, err := e.Result()
	if err != nil {
		return nil, err
	}
	return res.Outline, nil
}

// Title extracts just the document title, which may be empty when no
// confident guess exists.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	title, err := rubrica.Open("manual.pdf").Title()
func (e *Extractor) Title() (string, error) {
	res, err := e.Result()
	if err != nil {
		return "", err
	}
	return res.Title, nil
}

// Fragments extracts the positioned text fragments of every page in
// reading order.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	fragments, err := rubrica.Open("manual.pdf").Fragments()
func (e *Extractor) Fragments() ([]model.Fragment, error) {
	doc, err := e.document()
	if err != nil {
		return nil, err
	}
	return doc.Fragments(), nil
}

// Document extracts the full fragment model: metadata plus per-page
// fragments. Useful for feeding a custom outline.Engine or for
// inspection.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	doc, err := rubrica.Open("manual.pdf").Document()
func (e *Extractor) Document() (*model.Document, error) {
	return e.document()
}

// PageCount returns the total number of pages in the document.
// Note: This does NOT close the reader, allowing further operations.
//
// Example:
//
//	ext := rubrica.Open("manual.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	return e.reader.PageCount(), nil
}

// document runs the shared terminal prologue: fail-fast check, reader
// open, deferred close, document extraction.
func (e *Extractor) document() (*model.Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()

	return e.reader.Document()
}
