// ============================================================================
// Monkey - Interpreter Frontend
// ============================================================================
//
// Package:     logging
// Description: Factory functions for slog loggers with fan-out to several
//              outputs
// Author:      Mike Stoffels
// Created:     2026-01-12
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	slogmulti "github.com/samber/slog-multi"
)

// LevelTrace is below debug and used for per-token tracing
const LevelTrace = slog.LevelDebug - 4

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name, attached to every record as "service"
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format for the primary output: "text" or "json" (default: text)
	Format string

	// Primary output (default: os.Stderr)
	Output io.Writer

	// Additional outputs, always written as JSON
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
		Output:      os.Stderr,
	}
}

// NewLogger creates a logger writing to the configured outputs
func NewLogger(cfg LoggerConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var primary slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		primary = slog.NewJSONHandler(output, opts)
	} else {
		primary = slog.NewTextHandler(output, opts)
	}

	handlers := []slog.Handler{primary}
	for _, w := range cfg.AdditionalOutputs {
		if w != nil {
			handlers = append(handlers, slog.NewJSONHandler(w, opts))
		}
	}

	logger := slog.New(slogmulti.Fanout(handlers...))
	if cfg.ServiceName != "" {
		logger = logger.With("service", cfg.ServiceName)
	}
	return logger
}

// ParseLevel converts a level name to a slog level; unknown names map to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var defaultLogger atomic.Pointer[slog.Logger]

// Default returns the process-wide logger used when a component is given
// none. It discards everything until SetDefault is called.
func Default() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return Discard()
}

// SetDefault replaces the process-wide logger; nil restores discarding
func SetDefault(l *slog.Logger) {
	defaultLogger.Store(l)
}
