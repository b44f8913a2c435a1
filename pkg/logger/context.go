package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// With stores a child logger carrying extra fields on the context. Fields
// accumulate across calls, so middleware can stack attributes.
func With(ctx context.Context, args ...any) context.Context {
	return context.WithValue(ctx, contextKey{}, From(ctx).With(args...))
}

// From retrieves the request-scoped logger, falling back to the process one.
func From(ctx context.Context) *slog.Logger {
	if lg, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return lg
	}
	return LoggerWrapper()
}
