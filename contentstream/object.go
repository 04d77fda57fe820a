package contentstream

// Object is any operand value appearing in a content stream.
type Object any

// Number is a numeric operand. PDF distinguishes integers from reals; the
// operators handled here treat both as float64.
type Number float64

// String is a literal or hex string operand, holding the decoded bytes.
type String string

// Name is a name operand with the leading slash removed and # escapes
// resolved.
type Name string

// Array is an array operand, such as the argument of TJ.
type Array []Object

// Dict is a dictionary operand (rare in content streams, used by marked
// content and inline-image operators).
type Dict map[string]Object

// Bool is a boolean operand.
type Bool bool

// Null is the null operand.
type Null struct{}

// AsNumber returns the float64 value of a Number operand.
func AsNumber(obj Object) (float64, bool) {
	n, ok := obj.(Number)
	return float64(n), ok
}
