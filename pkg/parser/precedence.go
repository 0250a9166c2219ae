package parser

import (
	"github.com/msto63/monkey/pkg/ast"
	"github.com/msto63/monkey/pkg/token"
)

// Precedence is the binding power of an infix operator
type Precedence int

const (
	_ Precedence = iota
	LOWEST
	EQUALS  // ==
	COMPARE // > or <
	SUM     // +
	PRODUCT // *
	PREFIX  // -X or !X
	CALL    // myFunction(X)
)

// precedenceOf returns the infix binding power of t. Tokens that cannot
// continue an expression are LOWEST, which ends the climbing loop.
func precedenceOf(t token.Type) Precedence {
	switch t {
	case token.EQ, token.NOT_EQ:
		return EQUALS
	case token.LT, token.GT:
		return COMPARE
	case token.PLUS, token.MINUS:
		return SUM
	case token.ASTERISK, token.SLASH:
		return PRODUCT
	case token.LPAREN:
		return CALL
	default:
		return LOWEST
	}
}

// infixOperator maps a binary operator token to its AST operator
func infixOperator(t token.Type) (ast.InfixOperator, bool) {
	switch t {
	case token.PLUS:
		return ast.Add, true
	case token.MINUS:
		return ast.Sub, true
	case token.ASTERISK:
		return ast.Mul, true
	case token.SLASH:
		return ast.Div, true
	case token.EQ:
		return ast.Equals, true
	case token.NOT_EQ:
		return ast.NotEquals, true
	case token.LT:
		return ast.LessThan, true
	case token.GT:
		return ast.GreaterThan, true
	default:
		return 0, false
	}
}
