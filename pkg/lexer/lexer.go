// ============================================================================
// Monkey - Interpreter Frontend
// ============================================================================
//
// Package:     lexer
// Description: Byte cursor lexer turning Monkey source into tokens
// Author:      Mike Stoffels
// Created:     2026-01-12
// License:     MIT
// ============================================================================

package lexer

import (
	"strconv"

	"github.com/msto63/monkey/pkg/token"
)

// Lexer performs lexical analysis of Monkey source text. A Lexer is not safe
// for concurrent use.
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)

	err *LexError // First lexing failure
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input. Once the input is
// exhausted every call returns EOF at the same position.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.pos()

	if l.atEnd() {
		return token.Token{Type: token.EOF, Pos: pos}
	}

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.EQ, pos)
		} else {
			tok = token.New(token.ASSIGN, pos)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.NOT_EQ, pos)
		} else {
			tok = token.New(token.BANG, pos)
		}
	case '+':
		tok = token.New(token.PLUS, pos)
	case '-':
		tok = token.New(token.MINUS, pos)
	case '*':
		tok = token.New(token.ASTERISK, pos)
	case '/':
		tok = token.New(token.SLASH, pos)
	case '<':
		tok = token.New(token.LT, pos)
	case '>':
		tok = token.New(token.GT, pos)
	case '(':
		tok = token.New(token.LPAREN, pos)
	case ')':
		tok = token.New(token.RPAREN, pos)
	case '{':
		tok = token.New(token.LBRACE, pos)
	case '}':
		tok = token.New(token.RBRACE, pos)
	case ',':
		tok = token.New(token.COMMA, pos)
	case ';':
		tok = token.New(token.SEMICOLON, pos)
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			typ := token.LookupIdent(literal)
			return token.Token{Type: typ, Literal: literal, Pos: pos} // readIdentifier already advanced
		} else if isDigit(l.ch) {
			return l.readNumber(pos)
		}
		tok = token.Token{Type: token.ILLEGAL, Literal: l.input[l.position:l.readPos], Pos: pos}
	}

	l.readChar()
	return tok
}

// Err returns the first lexing failure, or nil
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// Tokenize returns all tokens through EOF. ILLEGAL characters stay in the
// stream; the returned error is the first lexing failure, if any.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == token.EOF {
			break
		}
	}

	return tokens, l.Err()
}

// Tokenize is a convenience function that tokenizes input in one call
func Tokenize(input string) ([]token.Token, error) {
	return New(input).Tokenize()
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}

	if l.position < len(l.input) && l.readPos > 0 && l.input[l.position] == '\n' {
		l.line++
		l.column = 0
	}

	l.position = l.readPos
	l.readPos++
	l.column++
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) pos() token.Position {
	return token.Position{Offset: l.position, Line: l.line, Column: l.column}
}

// readIdentifier reads a maximal run of letters and underscores
func (l *Lexer) readIdentifier() string {
	start := l.position
	for !l.atEnd() && isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a maximal run of digits as a base-10 int64
func (l *Lexer) readNumber(pos token.Position) token.Token {
	start := l.position
	for !l.atEnd() && isDigit(l.ch) {
		l.readChar()
	}
	literal := l.input[start:l.position]

	value, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		l.fail(&LexError{
			Kind:    IntegerOverflow,
			Pos:     pos,
			Literal: literal,
			cause:   err,
		})
		return token.Token{Type: token.ILLEGAL, Literal: literal, Pos: pos}
	}

	return token.Token{Type: token.INT, Literal: literal, Value: value, Pos: pos}
}

// skipWhitespace skips spaces, tabs, carriage returns and newlines
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r') {
		l.readChar()
	}
}

func (l *Lexer) fail(err *LexError) {
	if l.err == nil {
		l.err = err
	}
}

// isLetter checks if the character is an ASCII letter or underscore
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
