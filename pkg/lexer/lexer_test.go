package lexer

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/msto63/monkey/pkg/token"
)

// expectedToken ignores positions; see TestLexer_Positions for those
type expectedToken struct {
	Type    token.Type
	Literal string
}

func TestLexer_NextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
    x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
    return true;
} else {
    return false;
}

10 == 10;
10 != 9;
`

	expected := []expectedToken{
		{token.LET, "let"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.LET, "let"},
		{token.IDENT, "ten"},
		{token.ASSIGN, "="},
		{token.INT, "10"},
		{token.SEMICOLON, ";"},
		{token.LET, "let"},
		{token.IDENT, "add"},
		{token.ASSIGN, "="},
		{token.FUNCTION, "fn"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.IDENT, "y"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.SEMICOLON, ";"},
		{token.LET, "let"},
		{token.IDENT, "result"},
		{token.ASSIGN, "="},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "five"},
		{token.COMMA, ","},
		{token.IDENT, "ten"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.BANG, "!"},
		{token.MINUS, "-"},
		{token.SLASH, "/"},
		{token.ASTERISK, "*"},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.INT, "5"},
		{token.LT, "<"},
		{token.INT, "10"},
		{token.GT, ">"},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.INT, "5"},
		{token.LT, "<"},
		{token.INT, "10"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.TRUE, "true"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.FALSE, "false"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.INT, "10"},
		{token.EQ, "=="},
		{token.INT, "10"},
		{token.SEMICOLON, ";"},
		{token.INT, "10"},
		{token.NOT_EQ, "!="},
		{token.INT, "9"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want.Type {
			t.Fatalf("token %d: type = %s, want %s (literal %q)", i, tok.Type, want.Type, tok.Literal)
		}
		if tok.Literal != want.Literal {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, want.Literal)
		}
	}

	if err := l.Err(); err != nil {
		t.Errorf("unexpected lexer error: %v", err)
	}
}

func TestLexer_Positions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "Single line",
			input: "let x = 10;",
			expected: []token.Token{
				{Type: token.LET, Literal: "let", Pos: token.Position{Offset: 0, Line: 1, Column: 1}},
				{Type: token.IDENT, Literal: "x", Pos: token.Position{Offset: 4, Line: 1, Column: 5}},
				{Type: token.ASSIGN, Literal: "=", Pos: token.Position{Offset: 6, Line: 1, Column: 7}},
				{Type: token.INT, Literal: "10", Value: 10, Pos: token.Position{Offset: 8, Line: 1, Column: 9}},
				{Type: token.SEMICOLON, Literal: ";", Pos: token.Position{Offset: 10, Line: 1, Column: 11}},
				{Type: token.EOF, Literal: "", Pos: token.Position{Offset: 11, Line: 1, Column: 12}},
			},
		},
		{
			name:  "Multiple lines",
			input: "a\n  == b\r\n!",
			expected: []token.Token{
				{Type: token.IDENT, Literal: "a", Pos: token.Position{Offset: 0, Line: 1, Column: 1}},
				{Type: token.EQ, Literal: "==", Pos: token.Position{Offset: 4, Line: 2, Column: 3}},
				{Type: token.IDENT, Literal: "b", Pos: token.Position{Offset: 7, Line: 2, Column: 6}},
				{Type: token.BANG, Literal: "!", Pos: token.Position{Offset: 10, Line: 3, Column: 1}},
				{Type: token.EOF, Literal: "", Pos: token.Position{Offset: 11, Line: 3, Column: 2}},
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: []token.Token{
				{Type: token.EOF, Literal: "", Pos: token.Position{Offset: 0, Line: 1, Column: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("Tokenize() returned %d tokens, want %d: %v", len(tokens), len(tt.expected), tokens)
			}
			for i, want := range tt.expected {
				if tokens[i] != want {
					t.Errorf("token %d = %+v, want %+v", i, tokens[i], want)
				}
			}
		})
	}
}

func TestLexer_TwoCharOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Type
	}{
		{"==", []token.Type{token.EQ, token.EOF}},
		{"!=", []token.Type{token.NOT_EQ, token.EOF}},
		{"= =", []token.Type{token.ASSIGN, token.ASSIGN, token.EOF}},
		{"! =", []token.Type{token.BANG, token.ASSIGN, token.EOF}},
		{"===", []token.Type{token.EQ, token.ASSIGN, token.EOF}},
		{"!==", []token.Type{token.NOT_EQ, token.ASSIGN, token.EOF}},
		{"!!", []token.Type{token.BANG, token.BANG, token.EOF}},
		{"=", []token.Type{token.ASSIGN, token.EOF}},
		{"!", []token.Type{token.BANG, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, _ := Tokenize(tt.input)
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %v, want types %v", tokens, tt.expected)
			}
			for i, typ := range tt.expected {
				if tokens[i].Type != typ {
					t.Errorf("token %d: type = %s, want %s", i, tokens[i].Type, typ)
				}
			}
		})
	}
}

func TestLexer_IdentifiersAndIntegers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []expectedToken
	}{
		{"underscore identifier", "_foo_bar", []expectedToken{{token.IDENT, "_foo_bar"}}},
		{"identifier stops at digit", "foo1", []expectedToken{{token.IDENT, "foo"}, {token.INT, "1"}}},
		{"digit run then identifier", "12ab", []expectedToken{{token.INT, "12"}, {token.IDENT, "ab"}}},
		{"keyword prefix is identifier", "letter", []expectedToken{{token.IDENT, "letter"}}},
		{"leading zeros", "007", []expectedToken{{token.INT, "007"}}},
		{"max int64", "9223372036854775807", []expectedToken{{token.INT, "9223372036854775807"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			tokens = tokens[:len(tokens)-1] // drop EOF
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %v, want %v", tokens, tt.expected)
			}
			for i, want := range tt.expected {
				if tokens[i].Type != want.Type || tokens[i].Literal != want.Literal {
					t.Errorf("token %d = %s, want %s(%s)", i, tokens[i], want.Type, want.Literal)
				}
			}
		})
	}

	tok := New("9223372036854775807").NextToken()
	if tok.Value != 9223372036854775807 {
		t.Errorf("max int64 value = %d", tok.Value)
	}
	if tok = New("007").NextToken(); tok.Value != 7 {
		t.Errorf("007 value = %d, want 7", tok.Value)
	}
}

func TestLexer_IntegerOverflow(t *testing.T) {
	l := New("1 + 9223372036854775808; 2")

	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	if tokens[2].Type != token.ILLEGAL || tokens[2].Literal != "9223372036854775808" {
		t.Errorf("overflowing literal = %s, want ILLEGAL(9223372036854775808)", tokens[2])
	}
	if tokens[3].Type != token.SEMICOLON || tokens[4].Type != token.INT {
		t.Errorf("lexing did not continue after overflow: %v", tokens)
	}

	err := l.Err()
	if err == nil {
		t.Fatal("expected overflow error, got nil")
	}
	if !errors.Is(err, ErrIntegerOverflow) {
		t.Errorf("errors.Is(err, ErrIntegerOverflow) = false for %v", err)
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("expected wrapped strconv.ErrRange, got %v", err)
	}

	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %T", err)
	}
	if lexErr.Kind != IntegerOverflow || lexErr.Pos.Offset != 4 || lexErr.Pos.Column != 5 {
		t.Errorf("unexpected LexError %+v", lexErr)
	}
	if !strings.Contains(err.Error(), "line 1, column 5") {
		t.Errorf("error message missing position: %q", err.Error())
	}
}

func TestLexer_OnlyFirstOverflowIsKept(t *testing.T) {
	_, err := Tokenize("99999999999999999999 88888888888888888888")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %v", err)
	}
	if lexErr.Literal != "99999999999999999999" {
		t.Errorf("first error literal = %s", lexErr.Literal)
	}
}

func TestLexer_IllegalCharacters(t *testing.T) {
	tokens, err := Tokenize("a @ b\x00#")
	if err != nil {
		t.Fatalf("illegal characters must not be reported as lexer errors: %v", err)
	}

	expected := []expectedToken{
		{token.IDENT, "a"},
		{token.ILLEGAL, "@"},
		{token.IDENT, "b"},
		{token.ILLEGAL, "\x00"},
		{token.ILLEGAL, "#"},
		{token.EOF, ""},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %v", tokens)
	}
	for i, want := range expected {
		if tokens[i].Type != want.Type || tokens[i].Literal != want.Literal {
			t.Errorf("token %d = %s, want %s(%q)", i, tokens[i], want.Type, want.Literal)
		}
	}
}

func TestLexer_IllegalNonASCII(t *testing.T) {
	// Each byte of a multi-byte sequence is its own ILLEGAL token carrying
	// exactly that source byte
	tokens, err := Tokenize("x é")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	expected := []expectedToken{
		{token.IDENT, "x"},
		{token.ILLEGAL, "\xc3"},
		{token.ILLEGAL, "\xa9"},
		{token.EOF, ""},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %v", tokens)
	}
	for i, want := range expected {
		if tokens[i].Type != want.Type || tokens[i].Literal != want.Literal {
			t.Errorf("token %d = %s (% x), want %s(% x)", i, tokens[i], tokens[i].Literal, want.Type, want.Literal)
		}
	}
	if got := tokens[1].Literal + tokens[2].Literal; got != "é" {
		t.Errorf("illegal literals = %q, want the source bytes of %q", got, "é")
	}
	if tokens[2].Pos.Offset != 3 || tokens[2].Pos.Column != 4 {
		t.Errorf("second byte position = %+v, want offset 3 column 4", tokens[2].Pos)
	}
}

func TestLexer_EOFIsIdempotent(t *testing.T) {
	l := New("x  ")
	l.NextToken()

	first := l.NextToken()
	for i := 0; i < 5; i++ {
		if tok := l.NextToken(); tok != first {
			t.Fatalf("call %d after EOF returned %+v, want %+v", i, tok, first)
		}
	}
	if first.Type != token.EOF {
		t.Errorf("expected EOF, got %s", first)
	}
}

func TestLexer_RoundTrip(t *testing.T) {
	var samples []token.Token
	for typ := token.EOF; typ <= token.RETURN; typ++ {
		if typ.Symbol() != "" {
			samples = append(samples, token.New(typ, token.Position{}))
		}
	}
	samples = append(samples,
		token.Ident("foobar", token.Position{}),
		token.Ident("_x", token.Position{}),
		token.Int(0, token.Position{}),
		token.Int(838383, token.Position{}),
		token.Int(9223372036854775807, token.Position{}),
	)

	for _, want := range samples {
		t.Run(want.String(), func(t *testing.T) {
			got := New(want.Literal).NextToken()
			if !got.Same(want) {
				t.Errorf("re-lexing %q = %+v, want %+v", want.Literal, got, want)
			}
		})
	}
}
