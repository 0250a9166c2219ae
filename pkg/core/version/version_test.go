package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Platform", Platform},
		{"Lexer", Lexer},
		{"Parser", Parser},
		{"Language", Language},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.version == "" {
				t.Errorf("%s version is empty", tt.name)
			}
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name      string
		component string
		expected  string
	}{
		{"lexer component", "lexer", Lexer},
		{"parser component", "parser", Parser},
		{"language component", "language", Language},
		{"unknown component", "unknown", Platform},
		{"empty component", "", Platform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComponentVersion(tt.component)
			if result != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, result, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()

	for _, want := range []string{"monkey " + Platform, "parser:   " + Parser, "commit:   " + GitCommit} {
		if !strings.Contains(info, want) {
			t.Errorf("Info() = %q, missing %q", info, want)
		}
	}
}

func TestInfo_ListsComponents(t *testing.T) {
	lines := strings.Split(Info(), "\n")
	if len(lines) < len(Components)+1 {
		t.Fatalf("Info() has %d lines", len(lines))
	}

	tests := []struct {
		line     string
		expected string
	}{
		{lines[1], "  lexer:    " + Lexer},
		{lines[2], "  parser:   " + Parser},
		{lines[3], "  language: " + Language},
	}

	for _, tt := range tests {
		if tt.line != tt.expected {
			t.Errorf("line = %q, want %q", tt.line, tt.expected)
		}
	}
}
