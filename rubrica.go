// Package rubrica extracts document outlines from PDF files: the title
// plus the H1-H3 headings, each with its 1-based page number.
//
// Basic usage:
//
//	result, err := rubrica.Open("manual.pdf").Result()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//	for _, entry := range result.Outline {
//	    fmt.Printf("%s %s (page %d)\n", entry.Level, entry.Text, entry.Page)
//	}
//
// With options:
//
//	result, err := rubrica.Open("report.pdf").
//	    KeepFurniture().
//	    Result()
//
// For advanced use cases the lower-level reader and outline packages
// are also available; outline.Engine accepts any model.Document no
// matter how it was produced.
package rubrica

import (
	"github.com/tsawler/rubrica/model"
	"github.com/tsawler/rubrica/reader"
)

// Open opens a PDF file and returns an Extractor for fluent
// configuration. The returned Extractor must be closed when done,
// either explicitly via Close() or implicitly by a terminal operation
// like Result().
//
// Example:
//
//	result, err := rubrica.Open("manual.pdf").Result()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("manual.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	result, err := rubrica.FromReader(r).Result()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := rubrica.Must(rubrica.Open("manual.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Result() and panics if
// the error is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	res := rubrica.MustResult(rubrica.Open("manual.pdf").Result())
func MustResult(res model.Result, err error) model.Result {
	if err != nil {
		panic(err)
	}
	return res
}
