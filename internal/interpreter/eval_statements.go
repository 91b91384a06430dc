// Released under an MIT license. See LICENSE.

package interpreter

import (
	"fmt"

	"github.com/neo4reo/cpplox/internal/ast"
	"github.com/neo4reo/cpplox/internal/environment"
	"github.com/neo4reo/cpplox/internal/value"
)

// execute runs a single statement, returning whether it (or a statement nested
// under it) triggered a return.
func (in *Interpreter) execute(stmt ast.Stmt) (execResult, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.eval(s.Expression)
		return execResult{}, err

	case *ast.PrintStmt:
		v, err := in.eval(s.Expression)
		if err != nil {
			return execResult{}, err
		}

		fmt.Fprintln(in.out, v.String())
		return execResult{}, nil

	case *ast.VarStmt:
		var v value.Value = value.NilValue()
		if s.Initializer != nil {
			var err error
			v, err = in.eval(s.Initializer)
			if err != nil {
				return execResult{}, err
			}
		}

		in.environment.Define(s.Name.Lexeme, v)
		return execResult{}, nil

	case *ast.Block:
		previous := in.environment
		in.environment = environment.New(previous)
		defer func() { in.environment = previous }()

		return in.executeBlock(s.Statements)

	case *ast.If:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return execResult{}, err
		}

		if cond.Bool() {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}

		return execResult{}, nil

	case *ast.While:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return execResult{}, err
			}

			if !cond.Bool() {
				return execResult{}, nil
			}

			result, err := in.execute(s.Body)
			if err != nil {
				return execResult{}, err
			}

			if result.isReturn {
				return result, nil
			}
		}

	case *ast.Function:
		fn := NewFunction(s, in.environment)
		in.environment.Define(s.Name.Lexeme, fn)
		return execResult{}, nil

	case *ast.Return:
		var v value.Value = value.NilValue()
		if s.Value != nil {
			var err error
			v, err = in.eval(s.Value)
			if err != nil {
				return execResult{}, err
			}
		}

		return execResult{value: v, isReturn: true}, nil

	default:
		return execResult{}, errUnreachable
	}
}
