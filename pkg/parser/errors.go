package parser

import (
	"errors"
	"fmt"

	"github.com/msto63/monkey/pkg/token"
)

// Kind classifies a parse failure
type Kind int

const (
	// ExpectedIdentifier: a construct requiring an identifier saw another token
	ExpectedIdentifier Kind = iota + 1
	// UnexpectedToken: a structural expectation was violated
	UnexpectedToken
	// NoPrefixParse: the current token cannot begin an expression
	NoPrefixParse
	// MaxDepthExceeded: expression or block nesting exceeded Options.MaxDepth
	MaxDepthExceeded
	// InputTooLarge: the source exceeded Options.MaxInputLength
	InputTooLarge
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case ExpectedIdentifier:
		return "expected identifier"
	case UnexpectedToken:
		return "unexpected token"
	case NoPrefixParse:
		return "no prefix parse function"
	case MaxDepthExceeded:
		return "maximum nesting depth exceeded"
	case InputTooLarge:
		return "input too large"
	default:
		return "unknown"
	}
}

// Sentinel errors for use with errors.Is
var (
	ErrExpectedIdentifier = errors.New("expected identifier")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrNoPrefixParse      = errors.New("no prefix parse function")
	ErrMaxDepthExceeded   = errors.New("maximum nesting depth exceeded")
	ErrInputTooLarge      = errors.New("input too large")
)

var sentinels = map[Kind]error{
	ExpectedIdentifier: ErrExpectedIdentifier,
	UnexpectedToken:    ErrUnexpectedToken,
	NoPrefixParse:      ErrNoPrefixParse,
	MaxDepthExceeded:   ErrMaxDepthExceeded,
	InputTooLarge:      ErrInputTooLarge,
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Kind     Kind
	Message  string
	Pos      token.Position
	Token    token.Token // Offending token
	Expected token.Type  // Set for ExpectedIdentifier and UnexpectedToken
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", pe.Pos.Line, pe.Pos.Column, pe.Message)
}

// Is reports whether target is the sentinel for this error's kind
func (pe *ParseError) Is(target error) bool {
	return sentinels[pe.Kind] == target
}

func newError(kind Kind, tok token.Token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     tok.Pos,
		Token:   tok,
	}
}

// describe names a token for error messages
func describe(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.IDENT, token.INT, token.ILLEGAL:
		return fmt.Sprintf("%s %q", tok.Type, tok.Literal)
	default:
		return fmt.Sprintf("%s %q", tok.Type, tok.Type.Symbol())
	}
}
