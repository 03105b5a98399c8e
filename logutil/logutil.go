// logutil.go - slog Logger-Konstruktion fuer Mobinfer
// Einheitliches Log-Setup fuer CLI und Server
package logutil

import (
	"context"
	"io"
	"log/slog"
)

// LevelTrace liegt unterhalb von slog.LevelDebug
const LevelTrace slog.Level = -8

// NewLogger erstellt einen Text-Logger mit Quell-Angabe auf dem
// angegebenen Level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
}

// Trace loggt auf Trace-Level
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
