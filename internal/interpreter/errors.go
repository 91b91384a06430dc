// Released under an MIT license. See LICENSE.

package interpreter

import (
	"errors"
	"fmt"

	"github.com/neo4reo/cpplox/internal/token"
)

// RuntimeError is raised by bad operand types, undefined names, arity mismatches,
// and non-callable calls. It carries the offending token when one is available
// so the caller can report a line number.
type RuntimeError struct {
	Token   *token.T
	Message string
}

// NewRuntimeError creates a RuntimeError attached to tok.
func NewRuntimeError(tok *token.T, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

// Error formats the error as "[Line L] Error 'LEXEME': MESSAGE", or just the
// message if no token is attached.
func (e *RuntimeError) Error() string {
	if e.Token == nil {
		return e.Message
	}

	return fmt.Sprintf("[Line %d] Error '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// errUnreachable marks an evaluator/AST mismatch: a concrete ast.Expr or ast.Stmt
// implementation the evaluator's type switch does not recognize. It should never
// fire against a well-formed AST.
var errUnreachable = errors.New("unreachable")
