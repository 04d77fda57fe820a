package reader

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/tsawler/rubrica/contentstream"
	"github.com/tsawler/rubrica/model"
)

func parseOps(t *testing.T, stream string) []contentstream.Operation {
	t.Helper()
	ops, err := contentstream.NewParser([]byte(stream)).Parse()
	if err != nil {
		t.Fatalf("parse stream: %v", err)
	}
	return ops
}

var testFonts = map[string]fontInfo{
	"F1": {name: "Helvetica"},
	"F2": {name: "Helvetica-Bold", bold: true},
}

func TestTextStateSimpleShow(t *testing.T) {
	ops := parseOps(t, "BT /F1 12 Tf 72 700 Td (Hello) Tj ET")
	spans := newTextState(testFonts).process(ops)

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	sp := spans[0]
	if sp.text != "Hello" {
		t.Errorf("text = %q, want %q", sp.text, "Hello")
	}
	if sp.x != 72 || sp.y != 700 {
		t.Errorf("position = (%v, %v), want (72, 700)", sp.x, sp.y)
	}
	if sp.size != 12 {
		t.Errorf("size = %v, want 12", sp.size)
	}
	if sp.font.bold {
		t.Error("unexpected bold font")
	}
}

func TestTextStateLineMoves(t *testing.T) {
	stream := `BT /F1 10 Tf 14 TL 72 700 Td (one) Tj 0 -20 Td (two) Tj T* (three) Tj (four) ' ET`
	spans := newTextState(testFonts).process(parseOps(t, stream))

	wantY := []float64{700, 680, 666, 652}
	if len(spans) != len(wantY) {
		t.Fatalf("expected %d spans, got %d", len(wantY), len(spans))
	}
	for i, y := range wantY {
		if math.Abs(spans[i].y-y) > 0.01 {
			t.Errorf("span %d: y = %v, want %v", i, spans[i].y, y)
		}
		if spans[i].x != 72 {
			t.Errorf("span %d: x = %v, want 72", i, spans[i].x)
		}
	}
}

func TestTextStateTJAdjustments(t *testing.T) {
	ops := parseOps(t, "BT /F1 12 Tf 72 700 Td [(A) -2000 (B)] TJ ET")
	spans := newTextState(testFonts).process(ops)

	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	// "A" advances half the font size; the -2000 adjustment adds
	// another 24 units before "B".
	wantX := 72 + 0.5*12 + 24.0
	if math.Abs(spans[1].x-wantX) > 0.01 {
		t.Errorf("second span x = %v, want %v", spans[1].x, wantX)
	}
}

func TestTextStateMatrixScaling(t *testing.T) {
	ops := parseOps(t, "q 2 0 0 3 0 0 cm BT /F1 10 Tf 10 20 Td (X) Tj ET Q BT /F1 10 Tf 5 5 Td (Y) Tj ET")
	spans := newTextState(testFonts).process(ops)

	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	sp := spans[0]
	if sp.x != 20 || sp.y != 60 {
		t.Errorf("scaled position = (%v, %v), want (20, 60)", sp.x, sp.y)
	}
	if math.Abs(sp.size-30) > 0.01 {
		t.Errorf("scaled size = %v, want 30", sp.size)
	}
	// After Q the transform is restored.
	if spans[1].x != 5 || spans[1].y != 5 {
		t.Errorf("restored position = (%v, %v), want (5, 5)", spans[1].x, spans[1].y)
	}
	if math.Abs(spans[1].size-10) > 0.01 {
		t.Errorf("restored size = %v, want 10", spans[1].size)
	}
}

func TestTextStateTmPlacement(t *testing.T) {
	ops := parseOps(t, "BT /F2 24 Tf 1 0 0 1 200 500 Tm (Title) Tj ET")
	spans := newTextState(testFonts).process(ops)

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	sp := spans[0]
	if sp.x != 200 || sp.y != 500 {
		t.Errorf("position = (%v, %v), want (200, 500)", sp.x, sp.y)
	}
	if !sp.font.bold {
		t.Error("expected bold font info")
	}
}

func TestTextStateIgnoresShowOutsideBT(t *testing.T) {
	ops := parseOps(t, "/F1 12 Tf (stray) Tj BT 72 700 Td (kept) Tj ET")
	spans := newTextState(testFonts).process(ops)

	if len(spans) != 1 || spans[0].text != "kept" {
		t.Fatalf("expected only the in-block span, got %+v", spans)
	}
}

func TestAssembleReadingOrder(t *testing.T) {
	spans := []span{
		{text: "body", x: 72, y: 600, width: 40, size: 11},
		{text: "heading", x: 72, y: 700, width: 80, size: 16},
		{text: "right", x: 300, y: 600, width: 40, size: 11},
	}
	frags := assembleFragments(spans)

	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if frags[0].Text != "heading" {
		t.Errorf("first fragment = %q, want %q", frags[0].Text, "heading")
	}
	if frags[1].Text != "body right" {
		t.Errorf("second fragment = %q, want %q", frags[1].Text, "body right")
	}
}

func TestAssembleStyleSplit(t *testing.T) {
	spans := []span{
		{text: "1.", x: 72, y: 700, width: 12, size: 16, font: fontInfo{name: "Helvetica-Bold", bold: true}},
		{text: "Intro", x: 90, y: 700, width: 40, size: 16, font: fontInfo{name: "Helvetica-Bold", bold: true}},
		{text: "body text", x: 140, y: 700, width: 60, size: 11, font: fontInfo{name: "Helvetica"}},
	}
	frags := assembleFragments(spans)

	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if frags[0].Text != "1. Intro" {
		t.Errorf("merged text = %q, want %q", frags[0].Text, "1. Intro")
	}
	if !frags[0].Bold || frags[0].Size != 16 {
		t.Errorf("style = bold:%v size:%v, want bold:true size:16", frags[0].Bold, frags[0].Size)
	}
	if frags[1].Text != "body text" || frags[1].Bold {
		t.Errorf("second fragment = %q bold:%v", frags[1].Text, frags[1].Bold)
	}
}

func TestSpaceGap(t *testing.T) {
	tests := []struct {
		name string
		gap  float64
		size float64
		want bool
	}{
		{"word gap", 3, 12, true},
		{"tight kerning", 0.5, 12, false},
		{"overlap", -2, 12, false},
		{"exact threshold", 1.5, 12, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spaceGap(tt.gap, tt.size); got != tt.want {
				t.Errorf("spaceGap(%v, %v) = %v, want %v", tt.gap, tt.size, got, tt.want)
			}
		})
	}
}

func TestDecodeString(t *testing.T) {
	plain := fontInfo{name: "Helvetica"}
	composite := fontInfo{name: "NotoSans", composite: true}

	if got := decodeString("caf\xe9", plain); got != "café" {
		t.Errorf("cp1252 decode = %q, want %q", got, "café")
	}
	if got := decodeString("\xfe\xff\x00H\x00i", plain); got != "Hi" {
		t.Errorf("UTF-16 BOM decode = %q, want %q", got, "Hi")
	}
	if got := decodeString("\x00H\x00e\x00y", composite); got != "Hey" {
		t.Errorf("composite decode = %q, want %q", got, "Hey")
	}
	if got := decodeString("plain", plain); got != "plain" {
		t.Errorf("ascii decode = %q, want %q", got, "plain")
	}
}

func TestTrimSubsetPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ABCDEF+Helvetica-Bold", "Helvetica-Bold"},
		{"Helvetica", "Helvetica"},
		{"abcdef+Times", "abcdef+Times"},
		{"AB+Times", "AB+Times"},
	}
	for _, tt := range tests {
		if got := trimSubsetPrefix(tt.in); got != tt.want {
			t.Errorf("trimSubsetPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBoldFontName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"Arial Black", true},
		{"FiraSans-SemiBold", true},
		{"Helvetica", false},
		{"Times-Italic", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := boldFontName(tt.name); got != tt.want {
			t.Errorf("boldFontName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// buildFixture writes a small three-page document with known styles.
func buildFixture(t *testing.T) string {
	t.Helper()

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle("Fixture Manual", false)
	pdf.SetAuthor("Jane Doe", false)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(72, 120, "Fixture Manual")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(72, 200, "This page introduces the fixture used by the reader tests.")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(72, 100, "1. Installation")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(72, 140, "Unpack the archive and run the installer.")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(72, 100, "Plain page of body text.")

	path := filepath.Join(t.TempDir(), "fixture.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func findFragment(frags []model.Fragment, text string) (model.Fragment, bool) {
	for _, f := range frags {
		if f.Text == text {
			return f, true
		}
	}
	return model.Fragment{}, false
}

func TestReaderDocument(t *testing.T) {
	r, err := Open(buildFixture(t))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer r.Close()

	if r.PageCount() != 3 {
		t.Fatalf("PageCount = %d, want 3", r.PageCount())
	}

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("extract document: %v", err)
	}
	if doc.Source != "fixture" {
		t.Errorf("Source = %q, want %q", doc.Source, "fixture")
	}
	if doc.PageCount() != 3 {
		t.Fatalf("document pages = %d, want 3", doc.PageCount())
	}

	title, ok := findFragment(doc.GetPage(1).Fragments, "Fixture Manual")
	if !ok {
		t.Fatalf("title fragment not found on page 1: %+v", doc.GetPage(1).Fragments)
	}
	if !title.Bold {
		t.Error("title fragment should be bold")
	}
	if math.Abs(title.Size-24) > 0.5 {
		t.Errorf("title size = %v, want 24", title.Size)
	}
	if title.Page != 1 {
		t.Errorf("title page = %d, want 1", title.Page)
	}

	heading, ok := findFragment(doc.GetPage(2).Fragments, "1. Installation")
	if !ok {
		t.Fatalf("heading fragment not found on page 2: %+v", doc.GetPage(2).Fragments)
	}
	if !heading.Bold || math.Abs(heading.Size-16) > 0.5 {
		t.Errorf("heading style = bold:%v size:%v, want bold:true size:16", heading.Bold, heading.Size)
	}
	if heading.Page != 2 {
		t.Errorf("heading page = %d, want 2", heading.Page)
	}

	body, ok := findFragment(doc.GetPage(3).Fragments, "Plain page of body text.")
	if !ok {
		t.Fatalf("body fragment not found on page 3: %+v", doc.GetPage(3).Fragments)
	}
	if body.Bold {
		t.Error("body fragment should not be bold")
	}
}

func TestReaderReadingOrder(t *testing.T) {
	r, err := Open(buildFixture(t))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("extract document: %v", err)
	}

	frags := doc.GetPage(1).Fragments
	if len(frags) < 2 {
		t.Fatalf("expected at least 2 fragments on page 1, got %d", len(frags))
	}
	if frags[0].Text != "Fixture Manual" {
		t.Errorf("first fragment = %q, want the page-top title", frags[0].Text)
	}
	if frags[0].Y <= frags[1].Y {
		t.Errorf("fragments not in top-down order: y0=%v y1=%v", frags[0].Y, frags[1].Y)
	}
}

func TestReaderMetadata(t *testing.T) {
	r, err := Open(buildFixture(t))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer r.Close()

	md := r.Metadata()
	if md.Title != "Fixture Manual" {
		t.Errorf("Title = %q, want %q", md.Title, "Fixture Manual")
	}
	if md.Author != "Jane Doe" {
		t.Errorf("Author = %q, want %q", md.Author, "Jane Doe")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for non-PDF input")
	}
}

func TestOpenEncrypted(t *testing.T) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetProtection(0, "secret", "owner-secret")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(72, 100, "locked away")

	path := filepath.Join(t.TempDir(), "locked.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error for encrypted document")
	}
	if !errors.Is(err, ErrEncrypted) {
		t.Errorf("error = %v, want ErrEncrypted", err)
	}
}
