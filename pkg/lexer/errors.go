package lexer

import (
	"errors"
	"fmt"

	"github.com/msto63/monkey/pkg/token"
)

// Kind classifies a lexing failure
type Kind int

const (
	// IntegerOverflow means a digit run does not fit a signed 64-bit integer
	IntegerOverflow Kind = iota + 1
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case IntegerOverflow:
		return "integer overflow"
	default:
		return "unknown"
	}
}

// ErrIntegerOverflow matches any IntegerOverflow LexError via errors.Is
var ErrIntegerOverflow = errors.New("integer literal out of range")

// LexError represents a lexing failure with position information
type LexError struct {
	Kind    Kind
	Pos     token.Position
	Literal string

	cause error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: integer literal %s does not fit in 64 bits",
		e.Pos.Line, e.Pos.Column, e.Literal)
}

// Is reports whether target is the sentinel for this error's kind
func (e *LexError) Is(target error) bool {
	return e.Kind == IntegerOverflow && target == ErrIntegerOverflow
}

// Unwrap returns the underlying strconv error
func (e *LexError) Unwrap() error {
	return e.cause
}
