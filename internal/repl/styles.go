// ============================================================================
// Monkey - Interpreter Frontend
// ============================================================================
//
// Package:     repl
// Description: Styles for the read loop output
// Author:      Mike Stoffels
// Created:     2026-01-14
// License:     MIT
// ============================================================================

package repl

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color Palette - same hues as the other terminal frontends
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorKeyword = lipgloss.Color("#06B6D4") // Cyan
	ColorLiteral = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

type styles struct {
	enabled bool

	prompt  lipgloss.Style
	keyword lipgloss.Style
	literal lipgloss.Style
	token   lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

// newStyles builds the styles for out. color is auto, always or never; auto
// colours only interactive sessions.
func newStyles(out io.Writer, color string, interactive bool) styles {
	enabled := color == "always" || (color == "auto" && interactive)

	r := lipgloss.NewRenderer(out)
	if color == "always" && r.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.ANSI256)
	}

	return styles{
		enabled: enabled,
		prompt:  r.NewStyle().Foreground(ColorPrimary).Bold(true),
		keyword: r.NewStyle().Foreground(ColorKeyword).Bold(true),
		literal: r.NewStyle().Foreground(ColorLiteral),
		token:   r.NewStyle(),
		err:     r.NewStyle().Foreground(ColorError),
		muted:   r.NewStyle().Foreground(ColorMuted).Italic(true),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
