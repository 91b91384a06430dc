// Released under an MIT license. See LICENSE.

package interpreter

import (
	"strconv"
	"strings"
	"testing"

	"github.com/neo4reo/cpplox/internal/ast"
	"github.com/neo4reo/cpplox/internal/token"
)

// print 1 + 2 * 3;
func TestArithmeticPrecedence(t *testing.T) {
	program := []ast.Stmt{
		&ast.PrintStmt{
			Expression: &ast.Binary{
				Left:     &ast.Literal{Value: 1.0},
				Operator: tok(token.Plus, "+"),
				Right: &ast.Binary{
					Left:     &ast.Literal{Value: 2.0},
					Operator: tok(token.Star, "*"),
					Right:    &ast.Literal{Value: 3.0},
				},
			},
		},
	}

	out := run(t, program)
	if out != "7\n" {
		t.Fatalf("stdout = %q, want %q", out, "7\n")
	}
}

// print "a" + "b";
// print 1 + "x";
func TestStringConcatAndMixedTypePlusError(t *testing.T) {
	var buf strings.Builder
	in := New(&buf)

	concat := &ast.PrintStmt{
		Expression: &ast.Binary{
			Left:     &ast.Literal{Value: "a"},
			Operator: tok(token.Plus, "+"),
			Right:    &ast.Literal{Value: "b"},
		},
	}
	if err := in.Interpret([]ast.Stmt{concat}); err != nil {
		t.Fatalf("concat: unexpected error: %v", err)
	}
	if buf.String() != "ab\n" {
		t.Fatalf("stdout = %q, want %q", buf.String(), "ab\n")
	}

	mixed := &ast.PrintStmt{
		Expression: &ast.Binary{
			Left:     &ast.Literal{Value: 1.0},
			Operator: tok(token.Plus, "+"),
			Right:    &ast.Literal{Value: "x"},
		},
	}
	err := in.Interpret([]ast.Stmt{mixed})
	if err == nil {
		t.Fatalf("mixed: expected error, got none")
	}
	if err.Error() != wantMessage(mixed.Expression, "Operands must be two numbers or two strings.") {
		t.Fatalf("mixed: error = %q, want %q", err.Error(), wantMessage(mixed.Expression, "Operands must be two numbers or two strings."))
	}
}

// var a = "global";
// {
//   fun show() { print a; }
//   show();
//   var a = "inner";
//   show();
// }
func TestClosuresCaptureLexicalScope(t *testing.T) {
	showBody := []ast.Stmt{
		&ast.PrintStmt{Expression: &ast.Variable{Name: identTok("a")}},
	}

	block := &ast.Block{
		Statements: []ast.Stmt{
			&ast.Function{Name: identTok("show"), Params: nil, Body: showBody},
			&ast.ExpressionStmt{Expression: &ast.Call{
				Callee: &ast.Variable{Name: identTok("show")},
				Paren:  tok(token.RightParen, ")"),
			}},
			&ast.VarStmt{Name: identTok("a"), Initializer: &ast.Literal{Value: "inner"}},
			&ast.ExpressionStmt{Expression: &ast.Call{
				Callee: &ast.Variable{Name: identTok("show")},
				Paren:  tok(token.RightParen, ")"),
			}},
		},
	}

	program := []ast.Stmt{
		&ast.VarStmt{Name: identTok("a"), Initializer: &ast.Literal{Value: "global"}},
		block,
	}

	out := run(t, program)
	if out != "global\nglobal\n" {
		t.Fatalf("stdout = %q, want %q", out, "global\nglobal\n")
	}
}

// fun fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); }
// print fib(10);
func TestRecursionViaSelfReference(t *testing.T) {
	n := identTok("n")

	fib := &ast.Function{
		Name:   identTok("fib"),
		Params: []*token.T{n},
		Body: []ast.Stmt{
			&ast.If{
				Condition: &ast.Binary{
					Left:     &ast.Variable{Name: n},
					Operator: tok(token.Less, "<"),
					Right:    &ast.Literal{Value: 2.0},
				},
				Then: &ast.Return{Keyword: tok(token.Identifier, "return"), Value: &ast.Variable{Name: n}},
			},
			&ast.Return{
				Keyword: tok(token.Identifier, "return"),
				Value: &ast.Binary{
					Left: &ast.Call{
						Callee: &ast.Variable{Name: identTok("fib")},
						Paren:  tok(token.RightParen, ")"),
						Arguments: []ast.Expr{&ast.Binary{
							Left:     &ast.Variable{Name: n},
							Operator: tok(token.Minus, "-"),
							Right:    &ast.Literal{Value: 1.0},
						}},
					},
					Operator: tok(token.Plus, "+"),
					Right: &ast.Call{
						Callee: &ast.Variable{Name: identTok("fib")},
						Paren:  tok(token.RightParen, ")"),
						Arguments: []ast.Expr{&ast.Binary{
							Left:     &ast.Variable{Name: n},
							Operator: tok(token.Minus, "-"),
							Right:    &ast.Literal{Value: 2.0},
						}},
					},
				},
			},
		},
	}

	program := []ast.Stmt{
		fib,
		&ast.PrintStmt{Expression: &ast.Call{
			Callee:    &ast.Variable{Name: identTok("fib")},
			Paren:     tok(token.RightParen, ")"),
			Arguments: []ast.Expr{&ast.Literal{Value: 10.0}},
		}},
	}

	out := run(t, program)
	if out != "55\n" {
		t.Fatalf("stdout = %q, want %q", out, "55\n")
	}
}

// print nil or "hi";
// print 0 and "reached";
func TestShortCircuitAndTruthiness(t *testing.T) {
	program := []ast.Stmt{
		&ast.PrintStmt{Expression: &ast.Logical{
			Left:     &ast.Literal{Value: nil},
			Operator: tok(token.Or, "or"),
			Right:    &ast.Literal{Value: "hi"},
		}},
		&ast.PrintStmt{Expression: &ast.Logical{
			Left:     &ast.Literal{Value: 0.0},
			Operator: tok(token.And, "and"),
			Right:    &ast.Literal{Value: "reached"},
		}},
	}

	out := run(t, program)
	if out != "hi\nreached\n" {
		t.Fatalf("stdout = %q, want %q", out, "hi\nreached\n")
	}
}

// print bogus;
func TestUndefinedVariable(t *testing.T) {
	name := identTok("bogus")
	program := []ast.Stmt{
		&ast.PrintStmt{Expression: &ast.Variable{Name: name}},
	}

	var buf strings.Builder
	in := New(&buf)
	err := in.Interpret(program)
	if err == nil {
		t.Fatalf("expected an error, got none")
	}

	want := "Undefined variable 'bogus'."
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("error = %q, want it to contain %q", err.Error(), want)
	}
}

func TestScopeRestorationAfterError(t *testing.T) {
	var buf strings.Builder
	in := New(&buf)

	program := []ast.Stmt{
		&ast.Block{Statements: []ast.Stmt{
			&ast.PrintStmt{Expression: &ast.Variable{Name: identTok("bogus")}},
		}},
	}

	if err := in.Interpret(program); err == nil {
		t.Fatalf("expected an error, got none")
	}

	if in.Environment() != in.Globals() {
		t.Fatalf("environment was not restored to globals after an error inside a block")
	}
}

func TestScopeRestorationAfterReturn(t *testing.T) {
	var buf strings.Builder
	in := New(&buf)

	fn := &ast.Function{
		Name: identTok("f"),
		Body: []ast.Stmt{
			&ast.Return{Keyword: tok(token.Identifier, "return"), Value: &ast.Literal{Value: 1.0}},
		},
	}

	program := []ast.Stmt{
		fn,
		&ast.ExpressionStmt{Expression: &ast.Call{
			Callee: &ast.Variable{Name: identTok("f")},
			Paren:  tok(token.RightParen, ")"),
		}},
	}

	if err := in.Interpret(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if in.Environment() != in.Globals() {
		t.Fatalf("environment was not restored to globals after a function call")
	}
}

func TestArityMismatchRaisesBeforeBodyRuns(t *testing.T) {
	var buf strings.Builder
	in := New(&buf)

	fn := &ast.Function{
		Name:   identTok("f"),
		Params: []*token.T{identTok("x")},
		Body: []ast.Stmt{
			&ast.PrintStmt{Expression: &ast.Literal{Value: "should not run"}},
		},
	}

	program := []ast.Stmt{
		fn,
		&ast.ExpressionStmt{Expression: &ast.Call{
			Callee: &ast.Variable{Name: identTok("f")},
			Paren:  tok(token.RightParen, ")"),
		}},
	}

	err := in.Interpret(program)
	if err == nil {
		t.Fatalf("expected an arity error, got none")
	}

	want := "Expected 1 arguments but got 0."
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("error = %q, want it to contain %q", err.Error(), want)
	}

	if buf.String() != "" {
		t.Fatalf("stdout = %q, want empty (body must not run on arity mismatch)", buf.String())
	}
}

func TestClockReturnsANonNegativeNumber(t *testing.T) {
	var buf strings.Builder
	in := New(&buf)

	program := []ast.Stmt{
		&ast.PrintStmt{Expression: &ast.Call{
			Callee: &ast.Variable{Name: identTok("clock")},
			Paren:  tok(token.RightParen, ")"),
		}},
	}

	if err := in.Interpret(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(buf.String()) == "" {
		t.Fatalf("clock() printed nothing")
	}

	got, err := strconv.ParseFloat(strings.TrimSpace(buf.String()), 64)
	if err != nil {
		t.Fatalf("clock() printed %q, want a number: %v", buf.String(), err)
	}
	if got < 0 {
		t.Fatalf("clock() = %v, want a non-negative number", got)
	}
}

// run executes program against a fresh Interpreter and returns captured stdout.
func run(t *testing.T, program []ast.Stmt) string {
	t.Helper()

	var buf strings.Builder
	in := New(&buf)
	if err := in.Interpret(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return buf.String()
}

func wantMessage(_ ast.Expr, message string) string {
	return "[Line 1] Error '+': " + message
}
