// Released under an MIT license. See LICENSE.

// Command lox is a minimal demonstration of the evaluator core. It is not the
// language's CLI driver. That component (source file reading, a REPL loop, and
// exit-code mapping) lives, along with the lexer and parser, outside this
// repository. This command hand-builds the AST for a tiny fixed program and
// runs it, the way a library ships a runnable example rather than a product.
package main

import (
	"fmt"
	"os"

	"github.com/neo4reo/cpplox/internal/ast"
	"github.com/neo4reo/cpplox/internal/interpreter"
	"github.com/neo4reo/cpplox/internal/token"
)

func main() {
	// print "Hello, " + "world!";
	program := []ast.Stmt{
		&ast.PrintStmt{
			Expression: &ast.Binary{
				Left:     &ast.Literal{Value: "Hello, "},
				Operator: token.New(token.Plus, "+", 1),
				Right:    &ast.Literal{Value: "world!"},
			},
		},
	}

	in := interpreter.New(os.Stdout)
	if err := in.Interpret(program); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
