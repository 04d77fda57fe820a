package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/tsawler/rubrica/contentstream"
	"github.com/tsawler/rubrica/internal/textnorm"
	"github.com/tsawler/rubrica/model"
)

// ErrEncrypted reports a document that cannot be read without a password.
var ErrEncrypted = errors.New("pdf is encrypted")

// Fallback page geometry (US Letter) for pages without a usable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Reader extracts pages, fragments and metadata from one PDF document.
type Reader struct {
	ctx    *pdfmodel.Context
	file   *os.File // set when the reader owns the handle
	source string
}

// Open reads and validates the document at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	r, err := New(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f

	base := filepath.Base(path)
	r.source = strings.TrimSuffix(base, filepath.Ext(base))
	return r, nil
}

// New reads and validates a document from rs. The caller keeps
// ownership of rs.
func New(rs io.ReadSeeker) (*Reader, error) {
	ctx, err := api.ReadValidateAndOptimize(rs, pdfmodel.NewDefaultConfiguration())
	if err != nil {
		if isEncryptionError(err) {
			return nil, fmt.Errorf("open document: %w", ErrEncrypted)
		}
		return nil, fmt.Errorf("open document: %w", err)
	}
	return &Reader{ctx: ctx}, nil
}

func isEncryptionError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "password") || strings.Contains(msg, "encrypt")
}

// Close releases the underlying file when the reader owns one.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.ctx.PageCount
}

// Metadata returns the document information dictionary fields. Missing
// or malformed entries come back empty.
func (r *Reader) Metadata() model.Metadata {
	var md model.Metadata
	if r.ctx.Info == nil {
		return md
	}
	d, err := r.ctx.DereferenceDict(*r.ctx.Info)
	if err != nil || d == nil {
		return md
	}
	md.Title = r.infoString(d, "Title")
	md.Author = r.infoString(d, "Author")
	md.Subject = r.infoString(d, "Subject")
	md.Creator = r.infoString(d, "Creator")
	md.Producer = r.infoString(d, "Producer")
	return md
}

func (r *Reader) infoString(d types.Dict, key string) string {
	obj, found := d.Find(key)
	if !found {
		return ""
	}
	obj, err := r.ctx.Dereference(obj)
	if err != nil {
		return ""
	}
	var s string
	switch v := obj.(type) {
	case types.StringLiteral:
		s, _ = types.StringLiteralToString(v)
	case types.HexLiteral:
		s, _ = types.HexLiteralToString(v)
	}
	return textnorm.Clean(s)
}

// Document extracts every page into the fragment model. A page whose
// content cannot be parsed comes back empty so that fragment page
// numbers stay aligned with the physical document.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.Source = r.source
	doc.Metadata = r.Metadata()

	for pageNr := 1; pageNr <= r.ctx.PageCount; pageNr++ {
		page, err := r.page(pageNr)
		if err != nil {
			page = model.NewPage(defaultPageWidth, defaultPageHeight)
		}
		doc.AddPage(page)
	}

	return doc, nil
}

func (r *Reader) page(pageNr int) (*model.Page, error) {
	_, _, inh, err := r.ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNr, err)
	}

	width, height := defaultPageWidth, defaultPageHeight
	var res types.Dict
	if inh != nil {
		if inh.MediaBox != nil {
			width, height = inh.MediaBox.Width(), inh.MediaBox.Height()
		}
		res = inh.Resources
	}
	page := model.NewPage(width, height)

	data, err := r.pageContent(pageNr)
	if err != nil || len(data) == 0 {
		return page, nil
	}

	ops, err := contentstream.NewParser(data).Parse()
	if err != nil {
		// A malformed stream yields an empty page, not a failed document.
		return page, nil
	}

	spans := newTextState(r.pageFonts(res)).process(ops)
	page.Fragments = assembleFragments(spans)
	return page, nil
}

func (r *Reader) pageContent(pageNr int) ([]byte, error) {
	cr, err := pdfcpu.ExtractPageContent(r.ctx, pageNr)
	if err != nil {
		return nil, err
	}
	if cr == nil {
		return nil, nil
	}
	return io.ReadAll(cr)
}
