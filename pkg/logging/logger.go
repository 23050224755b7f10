// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package logging provides structured logging for glyphlens commands.
//
// # Description
//
// Built on the standard library slog package. Defaults follow Unix
// CLI conventions: human-readable text on stderr, Info level. JSON
// output is opt-in for scripting, and Quiet silences everything
// below Error so machine-readable command output on stdout stays
// clean.
//
// The library packages (registry, scanner, overlay, ...) are pure
// and never log; only the command layer does.
//
// # Thread Safety
//
// Logger is safe for concurrent use; slog handlers are thread-safe.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for development troubleshooting.
	LevelDebug Level = iota

	// LevelInfo is for normal operational messages.
	LevelInfo

	// LevelWarn is for recoverable, unexpected situations.
	LevelWarn

	// LevelError is for failed operations.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config/flag string to a Level. Unknown values
// fall back to Info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures the Logger. The zero value logs Info+ as text to
// stderr.
type Config struct {
	// Level sets the minimum level; messages below it are discarded.
	Level Level

	// JSON switches output to one JSON object per line.
	JSON bool

	// Quiet raises the effective minimum to Error regardless of
	// Level.
	Quiet bool

	// Output overrides the destination. Default: os.Stderr.
	// Tests point this at a buffer.
	Output io.Writer
}

// Logger wraps slog with this tool's configuration.
type Logger struct {
	*slog.Logger
}

// New creates a Logger from the config.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := cfg.Level
	if cfg.Quiet {
		level = LevelError
	}

	opts := &slog.HandlerOptions{Level: level.toSlogLevel()}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// Default returns a logger with the zero-value config.
func Default() *Logger {
	return New(Config{})
}
