package internal

import (
	"context"
	"time"
)

type userIDKey struct{}

// ContextWithUserID attaches the authenticated account id to the request
// context; the auth middleware is the only writer.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, or zero when the
// request never passed the auth middleware.
func UserIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(userIDKey{}).(int64)
	return id
}

// WithTimeout bounds a blocking operation, defaulting to five seconds.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 5 * time.Second
	}
	return context.WithTimeout(ctx, d)
}
