// Released under an MIT license. See LICENSE.

package interpreter

import "github.com/neo4reo/cpplox/internal/ast"

// Resolver walks an AST once, before evaluation, to work out how many
// environment frames separate each variable reference from the frame that
// declares it. A block or function call pushes exactly one runtime frame per
// syntactic scope, so that hop count is fixed for the lifetime of the AST node
// regardless of what any given call happens to do at runtime.
//
// This matters because Env.Get and Env.Assign search dynamically: they walk
// whatever chain of frames happens to exist when they run, not the chain that
// was in scope where the reference was written. A name that is redeclared in a
// block after a closure captured that block's frame would otherwise resolve
// against the redeclaration instead of the binding the closure's defining scope
// actually saw. Resolving statically and then looking up with GetAt/AssignAt
// (or, for references the resolver couldn't place in any local scope, going
// straight to globals rather than walking the dynamic chain) keeps a reference
// pinned to the scope it was written in.
//
// The scope-chain shape this component resolves against (one flat map per
// frame, a parent pointer) is the same shape Env itself uses.
type Resolver struct {
	scopes []map[string]bool
	locals map[ast.Expr]int
}

// NewResolver creates a Resolver ready to resolve one program's statements.
func NewResolver() *Resolver {
	return &Resolver{locals: make(map[ast.Expr]int)}
}

// Resolve walks statements and returns, for each Variable or Assign expression
// the walk placed in some enclosing block or function scope, the number of
// frames between where it's used and where it's declared. An expression absent
// from the result is assumed global.
func (r *Resolver) Resolve(statements []ast.Stmt) map[ast.Expr]int {
	r.resolveStmts(statements)
	return r.locals
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return
	}

	r.scopes[len(r.scopes)-1][name] = true
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.VarStmt:
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}

		r.declare(s.Name.Lexeme)

	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)

		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.Function:
		r.declare(s.Name.Lexeme)
		r.resolveFunction(s)

	case *ast.Return:
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function) {
	r.beginScope()

	for _, param := range fn.Params {
		r.declare(param.Lexeme)
	}

	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no identifiers to resolve

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Variable:
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.Call:
		r.resolveExpr(e.Callee)

		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	}
}

// resolveLocal records the hop count for expr if name is declared in some
// scope the resolver currently has open, searching innermost first. If name
// isn't found in any open scope, expr is left out of locals: the interpreter
// treats that as a global reference and looks it up directly in the globals
// frame rather than walking the dynamic chain.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
