package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a logger that discards all output.
// Libraries use it when no logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Default returns l, or a no-op logger when l is nil.
func Default(l *slog.Logger) *slog.Logger {
	if l == nil {
		return NewNope()
	}
	return l
}

// NewWriter is a shortcut for a text logger writing to w at the given level.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
