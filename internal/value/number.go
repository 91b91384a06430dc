// Released under an MIT license. See LICENSE.

package value

import (
	"math"
	"strconv"
)

// Number wraps Go's float64, Lox's only numeric type.
type Number float64

// Bool returns true: every number, including 0, is truthy.
func (Number) Bool() bool {
	return true
}

// Equal returns true if c is a Number equal to n under Go's == on float64, so
// NaN is never equal to anything, including itself, and 0 equals -0.
func (n Number) Equal(c Value) bool {
	o, ok := c.(Number)
	return ok && float64(n) == float64(o)
}

// String prints integral numbers without a trailing ".0" and everything else in
// Go's shortest round-tripping form.
func (n Number) String() string {
	f := float64(n)
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
