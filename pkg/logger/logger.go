package logger

import (
	"log/slog"
	"os"
	"strings"
)

var base *slog.Logger

// Init configures the process logger. Production emits JSON for log
// collectors; anything else gets human-readable text at debug level.
func Init(env string) {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)

	if strings.EqualFold(env, "production") {
		opts.Level = slog.LevelInfo
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	base = slog.New(handler)
	slog.SetDefault(base)
}

// LoggerWrapper returns the configured logger, initializing a development
// one on first use so callers never see nil.
func LoggerWrapper() *slog.Logger {
	if base == nil {
		Init("development")
	}
	return base
}
