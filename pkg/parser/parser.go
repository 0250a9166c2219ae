// ============================================================================
// Monkey - Interpreter Frontend
// ============================================================================
//
// Package:     parser
// Description: Pratt parser turning the lexer's token stream into an AST.
//              Statements are parsed by recursive descent, expressions by
//              precedence climbing with two tokens of lookahead.
// Author:      Mike Stoffels
// Created:     2026-01-12
// License:     MIT
// ============================================================================

package parser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/msto63/monkey/pkg/ast"
	"github.com/msto63/monkey/pkg/core/logging"
	"github.com/msto63/monkey/pkg/lexer"
	"github.com/msto63/monkey/pkg/token"
)

const (
	// DefaultMaxDepth bounds expression and block nesting
	DefaultMaxDepth = 512
	// DefaultMaxInputLength bounds the source accepted by Parse (1 MiB)
	DefaultMaxInputLength = 1 << 20
)

// Options configures parser behavior
type Options struct {
	Logger         *slog.Logger
	MaxDepth       int
	MaxInputLength int
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logging.Default()
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxInputLength <= 0 {
		o.MaxInputLength = DefaultMaxInputLength
	}
	return o
}

// Parser builds a Program from the tokens of one Lexer. A Parser is used for
// a single ParseProgram call and discarded afterwards.
type Parser struct {
	lexer   *lexer.Lexer
	current token.Token
	peek    token.Token
	depth   int
	logger  *slog.Logger
	options Options
}

// New creates a parser reading from l and primes both lookahead slots
func New(l *lexer.Lexer, opts Options) *Parser {
	opts = opts.withDefaults()
	p := &Parser{
		lexer:   l,
		logger:  opts.Logger.With("component", "monkey-parser"),
		options: opts,
	}
	p.advance()
	p.advance()
	return p
}

// Parse lexes and parses input in one step
func Parse(input string, opts Options) (*ast.Program, error) {
	opts = opts.withDefaults()
	if len(input) > opts.MaxInputLength {
		return nil, &ParseError{
			Kind:    InputTooLarge,
			Message: fmt.Sprintf("input exceeds maximum length: %d > %d", len(input), opts.MaxInputLength),
			Pos:     token.Position{Line: 1, Column: 1},
		}
	}
	return New(lexer.New(input), opts).ParseProgram()
}

// ParseProgram consumes the whole token stream. It returns the complete
// Program or the first failure; there is no partial result.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	p.logger.Debug("parsing started")

	program := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, p.fail(err)
		}
		program.Statements = append(program.Statements, stmt)
		p.advance()
	}

	// An overflowing literal always surfaces as ILLEGAL above; this keeps a
	// lexing failure from ever being dropped.
	if err := p.lexer.Err(); err != nil {
		return nil, p.fail(err)
	}

	p.logger.Debug("parsing completed", "statements", len(program.Statements))
	return program, nil
}

func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
	if p.logger.Enabled(context.Background(), logging.LevelTrace) {
		p.logger.Log(context.Background(), logging.LevelTrace, "token", "current", p.current.String())
	}
}

func (p *Parser) curIs(t token.Type) bool  { return p.current.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expectPeek advances when the next token has type t, otherwise reports
// what was expected and what was found
func (p *Parser) expectPeek(t token.Type) error {
	if p.peekIs(t) {
		p.advance()
		return nil
	}

	kind, want := UnexpectedToken, fmt.Sprintf("%q", t.Symbol())
	if t == token.IDENT {
		kind, want = ExpectedIdentifier, "identifier"
	}
	err := newError(kind, p.peek, "expected %s, got %s", want, describe(p.peek))
	err.Expected = t
	return err
}

// fail picks the error to report. When the lexer has failed too, the failure
// earlier in the source wins and the lexer wins ties.
func (p *Parser) fail(err error) error {
	var lexErr *lexer.LexError
	if errors.As(p.lexer.Err(), &lexErr) {
		var pe *ParseError
		if !errors.As(err, &pe) || lexErr.Pos.Offset <= pe.Pos.Offset {
			err = lexErr
		}
	}
	p.logger.Warn("parsing failed", "error", err.Error())
	return err
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.options.MaxDepth {
		p.depth--
		return newError(MaxDepthExceeded, p.current, "nesting exceeds maximum depth of %d", p.options.MaxDepth)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// Statements. Each parse function starts on the statement's first token
// and leaves current on its last one.

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// let <identifier> = <expression>[;]
func (p *Parser) parseLetStatement() (*ast.LetStatement, error) {
	stmt := &ast.LetStatement{Pos: p.current.Pos}

	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	stmt.Name = &ast.Identifier{Name: p.current.Literal, Pos: p.current.Pos}

	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}
	p.advance()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return stmt, nil
}

// return [<expression>][;]
func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	stmt := &ast.ReturnStatement{Pos: p.current.Pos}

	switch p.peek.Type {
	case token.SEMICOLON:
		p.advance()
		return stmt, nil
	case token.RBRACE, token.EOF:
		return stmt, nil
	}
	p.advance()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	stmt := &ast.ExpressionStatement{Pos: p.current.Pos}

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Expression = expr

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return stmt, nil
}

// parseBlock starts on '{' and ends on the matching '}'
func (p *Parser) parseBlock() (*ast.BlockStatement, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	block := &ast.BlockStatement{Pos: p.current.Pos}
	p.advance()

	for !p.curIs(token.RBRACE) {
		if p.curIs(token.EOF) {
			err := newError(UnexpectedToken, p.current, "expected %q, got %s", token.RBRACE.Symbol(), describe(p.current))
			err.Expected = token.RBRACE
			return nil, err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.advance()
	}
	return block, nil
}

// Expressions

// parseExpression parses a prefix production for current, then keeps
// folding infix productions while the next operator binds tighter than
// minPrecedence. The right operand recurses at the operator's own level,
// so operators of equal precedence associate to the left.
func (p *Parser) parseExpression(minPrecedence Precedence) (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for !p.peekIs(token.SEMICOLON) && minPrecedence < precedenceOf(p.peek.Type) {
		p.advance()
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parsePrefix() (ast.Expression, error) {
	tok := p.current

	switch tok.Type {
	case token.IDENT:
		return &ast.Identifier{Name: tok.Literal, Pos: tok.Pos}, nil
	case token.INT:
		return &ast.IntegerLiteral{Value: tok.Value, Pos: tok.Pos}, nil
	case token.TRUE, token.FALSE:
		return &ast.Boolean{Value: tok.Type == token.TRUE, Pos: tok.Pos}, nil
	case token.BANG, token.MINUS:
		return p.parsePrefixExpression()
	case token.LPAREN:
		return p.parseGroupedExpression()
	case token.IF:
		return p.parseIfExpression()
	case token.FUNCTION:
		return p.parseFunctionLiteral()
	default:
		return nil, newError(NoPrefixParse, tok, "no prefix parse function for %s", describe(tok))
	}
}

func (p *Parser) parsePrefixExpression() (*ast.PrefixExpression, error) {
	expr := &ast.PrefixExpression{Operator: ast.Not, Pos: p.current.Pos}
	if p.curIs(token.MINUS) {
		expr.Operator = ast.Negate
	}
	p.advance()

	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.advance()

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// if (<condition>) { ... } [else { ... }]
func (p *Parser) parseIfExpression() (*ast.IfExpression, error) {
	expr := &ast.IfExpression{Pos: p.current.Pos}

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	p.advance()

	condition, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	expr.Condition = condition

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	if expr.Consequence, err = p.parseBlock(); err != nil {
		return nil, err
	}

	if p.peekIs(token.ELSE) {
		p.advance()
		if err := p.expectPeek(token.LBRACE); err != nil {
			return nil, err
		}
		if expr.Alternative, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// fn(<parameters>) { ... }
func (p *Parser) parseFunctionLiteral() (*ast.FunctionLiteral, error) {
	fn := &ast.FunctionLiteral{Pos: p.current.Pos}

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	fn.Parameters = params

	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	if fn.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseFunctionParameters starts on '(' and ends on ')'
func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, error) {
	if p.peekIs(token.RPAREN) {
		p.advance()
		return nil, nil
	}

	var params []*ast.Identifier
	for {
		if err := p.expectPeek(token.IDENT); err != nil {
			return nil, err
		}
		params = append(params, &ast.Identifier{Name: p.current.Literal, Pos: p.current.Pos})

		if !p.peekIs(token.COMMA) {
			break
		}
		p.advance()
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseInfix(left ast.Expression) (ast.Expression, error) {
	tok := p.current

	if tok.Type == token.LPAREN {
		args, err := p.parseExpressionList(token.RPAREN)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpression{Function: left, Arguments: args, Pos: tok.Pos}, nil
	}

	op, ok := infixOperator(tok.Type)
	if !ok {
		return nil, newError(UnexpectedToken, tok, "no infix parse function for %s", describe(tok))
	}
	p.advance()

	right, err := p.parseExpression(precedenceOf(tok.Type))
	if err != nil {
		return nil, err
	}
	return &ast.InfixExpression{Operator: op, Left: left, Right: right, Pos: tok.Pos}, nil
}

// parseExpressionList parses comma separated expressions up to end. It
// starts on the opening delimiter and ends on end.
func (p *Parser) parseExpressionList(end token.Type) ([]ast.Expression, error) {
	if p.peekIs(end) {
		p.advance()
		return nil, nil
	}

	var list []ast.Expression
	for {
		p.advance()
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)

		if !p.peekIs(token.COMMA) {
			break
		}
		p.advance()
	}

	if err := p.expectPeek(end); err != nil {
		return nil, err
	}
	return list, nil
}
