// Released under an MIT license. See LICENSE.

package interpreter

import (
	"time"

	"github.com/neo4reo/cpplox/internal/environment"
	"github.com/neo4reo/cpplox/internal/value"
)

// defineGlobals registers Lox's one standard-library function in globals. The
// source's standard library is deliberately this small; nothing else belongs
// here.
func defineGlobals(globals *environment.Env) {
	globals.Define("clock", &native{
		name:  "clock",
		arity: 0,
		fn: func(*Interpreter, []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}
