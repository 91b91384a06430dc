// Released under an MIT license. See LICENSE.

package value

// Boolean wraps Go's bool type.
type Boolean bool

// Bool returns the underlying bool.
func (b Boolean) Bool() bool {
	return bool(b)
}

// Equal returns true if c is a Boolean with the same value.
func (b Boolean) Equal(c Value) bool {
	o, ok := c.(Boolean)
	return ok && b == o
}

// String returns "true" or "false".
func (b Boolean) String() string {
	if b {
		return "true"
	}

	return "false"
}
