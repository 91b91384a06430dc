// Released under an MIT license. See LICENSE.

package interpreter

import (
	"github.com/neo4reo/cpplox/internal/ast"
	"github.com/neo4reo/cpplox/internal/environment"
	"github.com/neo4reo/cpplox/internal/value"
)

// Function is a user-defined Callable: a reference to its declaring AST node plus
// the environment that was active when the `fun` declaration was evaluated (its
// closure).
type Function struct {
	declaration *ast.Function
	closure     *environment.Env
}

// NewFunction creates a Function capturing closure as its declaring environment.
func NewFunction(declaration *ast.Function, closure *environment.Env) *Function {
	return &Function{declaration: declaration, closure: closure}
}

// Bool returns true: every function value is truthy.
func (*Function) Bool() bool {
	return true
}

// Equal returns true if c is the same Function by identity.
func (f *Function) Equal(c value.Value) bool {
	o, ok := c.(*Function)
	return ok && f == o
}

// String returns "<fn NAME>".
func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// Arity returns the declared parameter count.
func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Call installs a fresh frame enclosed by the closure, binds parameters to
// arguments in order, executes the body, and restores the caller's environment
// on every exit path: normal completion, early return, or error.
func (f *Function) Call(in *Interpreter, arguments []value.Value) (value.Value, error) {
	frame := environment.New(f.closure)
	for i, param := range f.declaration.Params {
		frame.Define(param.Lexeme, arguments[i])
	}

	previous := in.environment
	in.environment = frame
	defer func() { in.environment = previous }()

	result, err := in.executeBlock(f.declaration.Body)
	if err != nil {
		return nil, err
	}

	if result.isReturn {
		return result.value, nil
	}

	return value.NilValue(), nil
}
