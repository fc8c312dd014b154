package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a slog.Logger writing JSON or text to stdout.
func New(format, level string) *slog.Logger {
	return newWithWriter(os.Stdout, format, level)
}

func newWithWriter(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true, Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}
