// Package logging builds the slog logger the CLI hands to every package.
package logging

import (
	"io"
	"log/slog"
)

// New returns a logger writing format ("json" or "text") to w at level.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
