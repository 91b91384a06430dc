// Released under an MIT license. See LICENSE.

package interpreter

import "github.com/neo4reo/cpplox/internal/value"

// Callable is a value that can be invoked with already-evaluated arguments. A
// callable is still a value.Value, so it can be printed, compared, bound to a
// name, with two additional operations: how many arguments it takes, and how
// to run it.
type Callable interface {
	value.Value

	// Arity returns the number of arguments Call expects.
	Arity() int

	// Call invokes the callable with already-evaluated arguments.
	Call(in *Interpreter, arguments []value.Value) (value.Value, error)
}

// native is a built-in Callable backed by a Go function, used for clock
// (builtins.go).
type native struct {
	name  string
	arity int
	fn    func(in *Interpreter, arguments []value.Value) (value.Value, error)
}

func (*native) Bool() bool {
	return true
}

func (n *native) Equal(c value.Value) bool {
	o, ok := c.(*native)
	return ok && n == o
}

func (n *native) String() string {
	return "<native fn " + n.name + ">"
}

func (n *native) Arity() int {
	return n.arity
}

func (n *native) Call(in *Interpreter, arguments []value.Value) (value.Value, error) {
	return n.fn(in, arguments)
}
