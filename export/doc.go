// Package export renders outline results as JSON and checks them
// against the output contract.
//
// The JSON shape is fixed: an object with a "title" string and an
// "outline" array of {level, text, page} records. The outline array is
// always present, even when empty, so downstream consumers never see
// null. Validate verifies a Result before it is written anywhere.
package export
