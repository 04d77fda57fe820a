// Package model provides the data types shared by the outline-extraction
// pipeline.
//
// The [Document] type is the hand-off between the reader (which turns PDF
// bytes into positioned text) and the outline engine (which turns positioned
// text into a document outline). Each [Page] carries its dimensions and an
// ordered list of [Fragment] values in reading order.
//
// The [Result] type is the externally visible output: a title plus an
// ordered list of [Entry] records, each labeled with a [Level] (H1-H3)
// and a 1-based page number. Result serializes to the stable JSON shape
//
//	{"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}]}
//
// where the outline array is always present, possibly empty.
package model
