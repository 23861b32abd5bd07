package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a preconfigured slog.Logger writing JSON to stdout.
// The level is parsed from the LOG_LEVEL value; unknown values fall back to info.
func New(level string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
