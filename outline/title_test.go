package outline

import (
	"testing"

	"github.com/tsawler/rubrica/model"
)

func docWithPageOne(meta model.Metadata, source string, frags ...model.Fragment) *model.Document {
	doc := model.NewDocument()
	doc.Metadata = meta
	doc.Source = source
	page := model.NewPage(612, 792)
	page.Fragments = frags
	doc.AddPage(page)
	return doc
}

func TestResolveTitleFromMetadata(t *testing.T) {
	doc := docWithPageOne(model.Metadata{Title: "Annual Report 2023"}, "annual-report")
	got := resolveTitle(doc, nil, Baseline{BodySize: 11}, nil)

	if got.text != "Annual Report 2023" {
		t.Errorf("title = %q, want %q", got.text, "Annual Report 2023")
	}
	if got.page != 1 {
		t.Errorf("title page = %d, want 1 for metadata titles", got.page)
	}
}

func TestGenericTitleRejected(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"placeholder", "Untitled"},
		{"placeholder document", "document"},
		{"filename suffix", "final_report.pdf"},
		{"word banner", "Microsoft Word - thesis.docx"},
		{"source stem", "Report-Q3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !genericTitle(tt.title, "report-q3") {
				t.Errorf("genericTitle(%q) = false, want true", tt.title)
			}
		})
	}

	if genericTitle("Annual Report 2023", "report-q3") {
		t.Error("a real title should not be rejected")
	}
}

func TestResolveTitleProminentFragment(t *testing.T) {
	title := makeFragment("A Study of Tides", 1, 28, false, 700)
	sub := makeFragment("With new observations", 1, 18, false, 660)
	body := makeFragment("The moon drives most of it.", 1, 11, false, 500)
	doc := docWithPageOne(model.Metadata{}, "tides", title, sub, body)

	got := resolveTitle(doc, nil, Baseline{BodySize: 11}, nil)

	if got.text != "A Study of Tides" {
		t.Errorf("title = %q, want the largest prominent fragment", got.text)
	}
	if got.page != 1 {
		t.Errorf("title page = %d, want 1", got.page)
	}
}

func TestResolveTitleIgnoresLowerHalf(t *testing.T) {
	low := makeFragment("Figure 1 caption in large type", 1, 20, false, 300)
	body := makeFragment("Body text of the usual size here.", 1, 11, false, 500)
	doc := docWithPageOne(model.Metadata{}, "figs", low, body)

	got := resolveTitle(doc, nil, Baseline{BodySize: 11}, nil)

	if got.text != "" {
		t.Errorf("title = %q, want empty: no fragment above the midpoint", got.text)
	}
}

func TestResolveTitleIgnoresCandidatesInProminence(t *testing.T) {
	heading := makeFragment("1. Introduction", 1, 20, true, 700)
	banner := makeFragment("Grant Proposal", 1, 16, false, 650)
	doc := docWithPageOne(model.Metadata{}, "prop", heading, banner)

	cands := []Candidate{{Fragment: heading, Score: 1.0, Index: 0}}
	got := resolveTitle(doc, cands, Baseline{BodySize: 11}, nil)

	// The 20pt fragment is a heading candidate, so prominence falls to
	// the 16pt banner.
	if got.text != "Grant Proposal" {
		t.Errorf("title = %q, want %q", got.text, "Grant Proposal")
	}
}

func TestResolveTitleFromBestCandidate(t *testing.T) {
	weak := makeFragment("2. Background", 1, 14, true, 700)
	strong := makeFragment("Deep Learning Survey", 1, 24, true, 650)
	doc := docWithPageOne(model.Metadata{}, "survey", weak, strong)

	cands := []Candidate{
		{Fragment: weak, Score: 0.7, Index: 0},
		{Fragment: strong, Score: 1.2, Index: 1},
	}
	got := resolveTitle(doc, cands, Baseline{BodySize: 11}, nil)

	if got.text != "Deep Learning Survey" {
		t.Errorf("title = %q, want the highest-scoring candidate", got.text)
	}
	if got.page != 1 {
		t.Errorf("title page = %d, want 1", got.page)
	}
}

func TestResolveTitleEmpty(t *testing.T) {
	body := makeFragment("Nothing stands out in this text.", 1, 11, false, 500)
	doc := docWithPageOne(model.Metadata{}, "plain", body)

	got := resolveTitle(doc, nil, Baseline{BodySize: 11}, nil)

	if got.text != "" || got.key != "" {
		t.Errorf("title = %+v, want zero value", got)
	}
}

func TestResolveTitleSkipsFurniture(t *testing.T) {
	header := makeFragment("ACME Quarterly", 1, 18, false, 780)
	body := makeFragment("Body text of the usual size here.", 1, 11, false, 500)
	doc := docWithPageOne(model.Metadata{}, "q3", header, body)

	furniture := map[string]bool{"acme quarterly": true}
	got := resolveTitle(doc, nil, Baseline{BodySize: 11}, furniture)

	if got.text != "" {
		t.Errorf("title = %q, want empty: furniture is not a title", got.text)
	}
}
