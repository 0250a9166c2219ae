// ============================================================================
// Monkey - Interpreter Frontend
// ============================================================================
//
// Package:     token
// Description: Lexical token model and keyword lookup
// Author:      Mike Stoffels
// Created:     2026-01-12
// License:     MIT
// ============================================================================

package token

import (
	"fmt"
	"strconv"
)

// Type represents the lexical category of a token
type Type int

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Identifiers and literals
	IDENT // add, foobar, x, y
	INT   // 1343456
	TRUE  // true
	FALSE // false

	// Operators
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	BANG     // !
	ASTERISK // *
	SLASH    // /
	EQ       // ==
	NOT_EQ   // !=
	LT       // <
	GT       // >

	// Delimiters
	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }

	// Keywords
	FUNCTION // fn
	LET      // let
	IF       // if
	ELSE     // else
	RETURN   // return
)

var typeNames = [...]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	IDENT:     "IDENT",
	INT:       "INT",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	ASSIGN:    "ASSIGN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	BANG:      "BANG",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
	EQ:        "EQ",
	NOT_EQ:    "NOT_EQ",
	LT:        "LT",
	GT:        "GT",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	FUNCTION:  "FUNCTION",
	LET:       "LET",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

// String returns a string representation of the token type
func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNKNOWN"
}

// Symbol returns the source text of fixed tokens. Identifiers, integers and
// ILLEGAL have no fixed text and return an empty string.
func (t Type) Symbol() string {
	switch t {
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case ASSIGN:
		return "="
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case BANG:
		return "!"
	case ASTERISK:
		return "*"
	case SLASH:
		return "/"
	case EQ:
		return "=="
	case NOT_EQ:
		return "!="
	case LT:
		return "<"
	case GT:
		return ">"
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case LBRACE:
		return "{"
	case RBRACE:
		return "}"
	case FUNCTION:
		return "fn"
	case LET:
		return "let"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case RETURN:
		return "return"
	default:
		return ""
	}
}

// IsKeyword reports whether the type is produced by the keyword table
func (t Type) IsKeyword() bool {
	switch t {
	case FUNCTION, LET, IF, ELSE, RETURN, TRUE, FALSE:
		return true
	}
	return false
}

// Position is a location in the source text
type Position struct {
	Offset int // Byte offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a classified lexical unit. Tokens are plain values and can be
// compared with ==; use Same to ignore the source position.
type Token struct {
	Type    Type     // Token type
	Literal string   // Source text of the token
	Value   int64    // Parsed value for INT tokens
	Pos     Position // Position of the first byte
}

// New creates a fixed-text token of the given type
func New(t Type, pos Position) Token {
	return Token{Type: t, Literal: t.Symbol(), Pos: pos}
}

// Ident creates an identifier token
func Ident(name string, pos Position) Token {
	return Token{Type: IDENT, Literal: name, Pos: pos}
}

// Int creates an integer literal token
func Int(value int64, pos Position) Token {
	return Token{Type: INT, Literal: strconv.FormatInt(value, 10), Value: value, Pos: pos}
}

// Same reports structural equality ignoring the position
func (t Token) Same(other Token) bool {
	return t.Type == other.Type && t.Literal == other.Literal && t.Value == other.Value
}

// String returns a debug representation of the token
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case IDENT, INT, ILLEGAL:
		return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
	default:
		return t.Type.String()
	}
}

// keywords is never written after package initialization
var keywords = map[string]Type{
	"fn":     FUNCTION,
	"let":    LET,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
}

// LookupIdent returns the keyword type for name, or IDENT
func LookupIdent(name string) Type {
	if t, ok := keywords[name]; ok {
		return t
	}
	return IDENT
}

// Keywords returns the keyword spellings in a fresh map
func Keywords() map[string]Type {
	out := make(map[string]Type, len(keywords))
	for k, v := range keywords {
		out[k] = v
	}
	return out
}
