// Package contentstream tokenizes decoded PDF content streams.
//
// Content streams hold the instructions for rendering page content. The
// parser turns raw stream bytes into a flat sequence of operations, each an
// operator with the operands that preceded it:
//
//	parser := contentstream.NewParser(streamData)
//	ops, err := parser.Parse()
//	for _, op := range ops {
//	    fmt.Printf("%s %v\n", op.Operator, op.Operands)
//	}
//
// The text-relevant operators consumed downstream are:
//   - BT, ET - begin/end text object
//   - Tf - set font and size
//   - Tm, Td, TD, T*, TL - text positioning and leading
//   - Tj, TJ, ', " - show text
//   - q, Q, cm - graphics state save/restore and CTM changes
//
// Operands are represented by the small taxonomy in this package: [Number],
// [String], [Name], [Array], [Dict], [Bool], and [Null].
package contentstream
