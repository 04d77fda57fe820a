package model

// Metadata contains document-level information from the PDF Info dictionary.
// Any field may be empty.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
}

// Page holds the extracted fragments of one page plus its dimensions in
// PDF user-space units.
type Page struct {
	Number    int // 1-based
	Width     float64
	Height    float64
	Fragments []Fragment
}

// NewPage creates an empty page with the given dimensions.
func NewPage(width, height float64) *Page {
	return &Page{Width: width, Height: height}
}

// Document represents a parsed document: metadata plus per-page fragments.
// It is what the reader hands to the outline engine; the engine accepts any
// Document regardless of how it was produced.
type Document struct {
	// Source identifies the input (usually the file name). It is used only
	// to reject filename-derived metadata titles and in error reporting.
	Source   string
	Metadata Metadata
	Pages    []*Page
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{Pages: make([]*Page, 0)}
}

// AddPage appends a page and assigns its 1-based number.
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	for i := range page.Fragments {
		page.Fragments[i].Page = page.Number
	}
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed), or nil if out of range.
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Fragments returns all fragments flattened in document order: pages in
// ascending order, fragments in reading order within each page.
func (d *Document) Fragments() []Fragment {
	var out []Fragment
	for _, page := range d.Pages {
		out = append(out, page.Fragments...)
	}
	return out
}

// FragmentCount returns the total number of fragments across all pages.
func (d *Document) FragmentCount() int {
	n := 0
	for _, page := range d.Pages {
		n += len(page.Fragments)
	}
	return n
}
