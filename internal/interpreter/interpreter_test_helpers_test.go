// Released under an MIT license. See LICENSE.

package interpreter

import "github.com/neo4reo/cpplox/internal/token"

// The helpers below build small AST fragments tersely for tests. This module has
// no parser, so every fixture is hand-built; keeping the constructors short
// keeps the fixtures readable as Lox source in disguise.

func tok(kind token.Kind, lexeme string) *token.T {
	return token.New(kind, lexeme, 1)
}

func identTok(name string) *token.T {
	return token.New(token.Identifier, name, 1)
}
