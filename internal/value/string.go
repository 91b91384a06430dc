// Released under an MIT license. See LICENSE.

package value

// String wraps Go's string type. It is immutable for Lox's semantics; nothing in
// this package mutates the underlying bytes once constructed.
type String string

// Bool returns true: every string, including the empty string, is truthy.
func (String) Bool() bool {
	return true
}

// Equal returns true if c is a String with the same codepoints.
func (s String) Equal(c Value) bool {
	o, ok := c.(String)
	return ok && s == o
}

// String returns the text, without surrounding quotes.
func (s String) String() string {
	return string(s)
}
