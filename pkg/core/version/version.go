// ============================================================================
// Monkey - Interpreter Frontend
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its components
// Author:      Mike Stoffels
// Created:     2026-01-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version constants for the Monkey frontend
const (
	// Release version of the monkey binary
	Platform = "0.4.0"

	// Component versions
	Lexer    = "0.3.0"
	Parser   = "0.4.0"
	Language = "1.0.0" // Monkey grammar revision
)

// Build information, set via -ldflags at build time
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "language":
		return Language
	default:
		return Platform
	}
}

// Components lists the versioned parts of the frontend in display order
var Components = []string{"lexer", "parser", "language"}

// Info returns a multi-line version summary for the version command
func Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "monkey %s\n", Platform)
	for _, name := range Components {
		fmt.Fprintf(&b, "  %-10s%s\n", name+":", ComponentVersion(name))
	}
	fmt.Fprintf(&b, "  %-10s%s\n", "commit:", GitCommit)
	fmt.Fprintf(&b, "  %-10s%s\n", "built:", BuildDate)
	fmt.Fprintf(&b, "  %-10s%s %s/%s\n", "go:", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return b.String()
}
