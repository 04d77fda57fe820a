// Package reader opens PDF documents and turns their pages into the
// fragment model consumed by the outline pipeline.
//
// Parsing and decoding of the PDF object graph is delegated to pdfcpu.
// The reader walks every page, pulls the decoded content stream,
// tokenizes it with the contentstream package and replays the text
// operators through a small text-state machine. The positioned runs
// that fall out are sorted into reading order, grouped into lines and
// merged into style-uniform fragments.
//
// Basic usage:
//
//	r, err := reader.Open("report.pdf")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	doc, err := r.Document()
//	if err != nil {
//	    return err
//	}
//
// Encrypted documents that require a password are reported with
// ErrEncrypted.
package reader
