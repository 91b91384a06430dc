// Released under an MIT license. See LICENSE.

package interpreter

import (
	"strconv"

	"github.com/neo4reo/cpplox/internal/ast"
	"github.com/neo4reo/cpplox/internal/token"
	"github.com/neo4reo/cpplox/internal/value"
)

// eval evaluates a single expression to a value.
func (in *Interpreter) eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.eval(e.Expression)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Variable:
		return in.lookupVariable(e, e.Name)

	case *ast.Assign:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}

		if err := in.assignVariable(e, e.Name, v); err != nil {
			return nil, err
		}

		return v, nil

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Call:
		return in.evalCall(e)

	default:
		return nil, errUnreachable
	}
}

// literalValue converts a parser-supplied literal payload to a runtime value.
// The parser is outside this module; it may hand us nil, bool, float64, or
// string, matching the four non-callable Literal payloads ast.Literal accepts.
func literalValue(v any) value.Value {
	switch lit := v.(type) {
	case nil:
		return value.NilValue()
	case bool:
		return value.Boolean(lit)
	case float64:
		return value.Number(lit)
	case string:
		return value.String(lit)
	default:
		return value.NilValue()
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, NewRuntimeError(e.Operator, "Operands must be numbers.")
		}

		return -n, nil

	case token.Bang:
		return value.Boolean(!right.Bool()), nil

	default:
		return nil, errUnreachable
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}

	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.EqualEqual:
		return value.Boolean(left.Equal(right)), nil

	case token.BangEqual:
		return value.Boolean(!left.Equal(right)), nil

	case token.Plus:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}

		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}

		return nil, NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case token.Minus, token.Slash, token.Star, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, ok := left.(value.Number)
		if !ok {
			return nil, NewRuntimeError(e.Operator, "Operands must be numbers.")
		}

		rn, ok := right.(value.Number)
		if !ok {
			return nil, NewRuntimeError(e.Operator, "Operands must be numbers.")
		}

		return numericBinary(e.Operator.Kind, ln, rn)

	default:
		return nil, errUnreachable
	}
}

// numericBinary dispatches the operators that require two numbers. Division by
// zero follows IEEE-754 (Inf or NaN) rather than raising.
func numericBinary(kind token.Kind, left, right value.Number) (value.Value, error) {
	switch kind {
	case token.Minus:
		return left - right, nil
	case token.Slash:
		return left / right, nil
	case token.Star:
		return left * right, nil
	case token.Greater:
		return value.Boolean(left > right), nil
	case token.GreaterEqual:
		return value.Boolean(left >= right), nil
	case token.Less:
		return value.Boolean(left < right), nil
	case token.LessEqual:
		return value.Boolean(left <= right), nil
	default:
		return nil, errUnreachable
	}
}

func (in *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Or:
		if left.Bool() {
			return left, nil
		}

	case token.And:
		if !left.Bool() {
			return left, nil
		}

	default:
		return nil, errUnreachable
	}

	return in.eval(e.Right)
}

func (in *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}

	arguments := make([]value.Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		arg, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}

		arguments[i] = arg
	}

	if len(arguments) != callable.Arity() {
		return nil, NewRuntimeError(e.Paren, arityMessage(callable.Arity(), len(arguments)))
	}

	return callable.Call(in, arguments)
}

func arityMessage(expected, got int) string {
	return "Expected " + strconv.Itoa(expected) + " arguments but got " + strconv.Itoa(got) + "."
}

// lookupVariable reads name's value using the hop count the resolver computed
// for expr, if any. Without one, expr is assumed to reference a global and is
// read directly from globals rather than walked to dynamically. See Resolver.
func (in *Interpreter) lookupVariable(expr ast.Expr, name *token.T) (value.Value, error) {
	if depth, ok := in.locals[expr]; ok {
		v, ok := in.environment.GetAt(depth, name.Lexeme)
		if !ok {
			return nil, NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
		}

		return v, nil
	}

	v, ok := in.globals.Get(name.Lexeme)
	if !ok {
		return nil, NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
	}

	return v, nil
}

// assignVariable mirrors lookupVariable for assignment targets.
func (in *Interpreter) assignVariable(expr ast.Expr, name *token.T, v value.Value) error {
	if depth, ok := in.locals[expr]; ok {
		if !in.environment.AssignAt(depth, name.Lexeme, v) {
			return NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
		}

		return nil
	}

	if !in.globals.Assign(name.Lexeme, v) {
		return NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
	}

	return nil
}
