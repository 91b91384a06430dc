// Released under an MIT license. See LICENSE.

// Package interpreter implements Lox's tree-walking evaluator: it accepts a slice
// of ast.Stmt built by an (external) parser and executes it against a runtime
// environment, producing printed output and, for tests, a final value per
// expression.
package interpreter

import (
	"io"

	"github.com/neo4reo/cpplox/internal/ast"
	"github.com/neo4reo/cpplox/internal/environment"
	"github.com/neo4reo/cpplox/internal/value"
)

// Interpreter walks an AST against a mutable lexical environment.
//
// Evaluation results thread through ordinary Go return values, a (value,
// error) pair per expression and a small execResult{value, isReturn} plus
// error per statement, rather than a shared result register and a "returning"
// flag. Output goes through an injected writer rather than a hard-coded
// stream, so tests can capture it without touching process-wide stdio.
type Interpreter struct {
	environment *environment.Env
	globals     *environment.Env
	locals      map[ast.Expr]int
	out         io.Writer
}

// New creates an Interpreter that writes print-statement output to out and
// registers the built-in global function clock (see builtins.go).
func New(out io.Writer) *Interpreter {
	globals := environment.New(nil)
	in := &Interpreter{
		environment: globals,
		globals:     globals,
		locals:      make(map[ast.Expr]int),
		out:         out,
	}
	defineGlobals(globals)

	return in
}

// Globals returns the outermost environment. Exposed for tests that want to
// define additional built-ins or inspect global state after a run.
func (in *Interpreter) Globals() *environment.Env {
	return in.globals
}

// Environment returns the currently active frame. It equals Globals() whenever no
// block or function call is in progress, including after every top-level Interpret
// call returns or errors.
func (in *Interpreter) Environment() *environment.Env {
	return in.environment
}

// Interpret resolves and then executes statements in order against the global
// environment. A runtime error aborts the remaining statements and is returned
// to the caller. A `return` that unwinds all the way to this call is silently
// discarded, matching the source's behavior.
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for expr, depth := range NewResolver().Resolve(statements) {
		in.locals[expr] = depth
	}

	_, err := in.executeBlock(statements)
	return err
}

// execResult reports whether a statement (or the statements nested under it)
// triggered a `return`, and if so, with what value.
type execResult struct {
	value    value.Value
	isReturn bool
}

// executeBlock runs statements in the current environment, stopping as soon as
// one of them reports a pending return. It does not push a new frame itself.
// Callers that need a fresh scope (Block, Function.Call) push one first.
func (in *Interpreter) executeBlock(statements []ast.Stmt) (execResult, error) {
	for _, stmt := range statements {
		result, err := in.execute(stmt)
		if err != nil {
			return execResult{}, err
		}

		if result.isReturn {
			return result, nil
		}
	}

	return execResult{}, nil
}
