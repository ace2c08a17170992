package observability

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds a text logger for the given level name and installs it as
// the slog default. Unknown levels fall back to info.
func NewLogger(output io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: ParseLevel(level)}))
	slog.SetDefault(logger)
	return logger
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
