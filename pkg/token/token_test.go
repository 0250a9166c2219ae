package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Type
	}{
		{"function keyword", "fn", FUNCTION},
		{"let keyword", "let", LET},
		{"if keyword", "if", IF},
		{"else keyword", "else", ELSE},
		{"return keyword", "return", RETURN},
		{"true keyword", "true", TRUE},
		{"false keyword", "false", FALSE},
		{"plain identifier", "foobar", IDENT},
		{"keywords are case sensitive", "LET", IDENT},
		{"keyword prefix", "lets", IDENT},
		{"underscore", "_", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LookupIdent(tt.input); got != tt.expected {
				t.Errorf("LookupIdent(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	kw := Keywords()
	kw["fn"] = IDENT
	delete(kw, "let")

	if LookupIdent("fn") != FUNCTION {
		t.Error("mutating Keywords() result changed the keyword table")
	}
	if LookupIdent("let") != LET {
		t.Error("deleting from Keywords() result changed the keyword table")
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{EOF, "EOF"},
		{ILLEGAL, "ILLEGAL"},
		{NOT_EQ, "NOT_EQ"},
		{RETURN, "RETURN"},
		{Type(999), "UNKNOWN"},
		{Type(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("Type(%d).String() = %q, want %q", int(tt.typ), got, tt.expected)
		}
	}
}

func TestType_SymbolKeywordsRoundTrip(t *testing.T) {
	for name, typ := range Keywords() {
		if typ.Symbol() != name {
			t.Errorf("%s.Symbol() = %q, want %q", typ, typ.Symbol(), name)
		}
		if !typ.IsKeyword() {
			t.Errorf("%s.IsKeyword() = false", typ)
		}
	}
	if PLUS.IsKeyword() {
		t.Error("PLUS.IsKeyword() = true")
	}
	if IDENT.Symbol() != "" || INT.Symbol() != "" {
		t.Error("literal types must not have a fixed symbol")
	}
}

func TestToken_Same(t *testing.T) {
	a := Int(42, Position{Offset: 0, Line: 1, Column: 1})
	b := Int(42, Position{Offset: 10, Line: 2, Column: 3})

	if !a.Same(b) {
		t.Error("tokens with equal content at different positions should be Same")
	}
	if a == b {
		t.Error("tokens at different positions should not be ==")
	}
	if a.Same(Int(43, a.Pos)) {
		t.Error("tokens with different values should not be Same")
	}
	if Ident("x", a.Pos).Same(Ident("y", a.Pos)) {
		t.Error("identifiers with different names should not be Same")
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		tok      Token
		expected string
	}{
		{Token{Type: EOF}, "EOF"},
		{Ident("five", Position{}), "IDENT(five)"},
		{Int(5, Position{}), "INT(5)"},
		{Token{Type: ILLEGAL, Literal: "@"}, "ILLEGAL(@)"},
		{New(NOT_EQ, Position{}), "NOT_EQ"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestNew(t *testing.T) {
	pos := Position{Offset: 3, Line: 1, Column: 4}
	tok := New(EQ, pos)
	if tok.Literal != "==" || tok.Pos != pos || tok.Type != EQ {
		t.Errorf("New(EQ) = %+v", tok)
	}
	if pos.String() != "1:4" {
		t.Errorf("Position.String() = %q", pos.String())
	}
}
