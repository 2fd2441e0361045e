package http

import "context"

type contextKey string

const userIDKey contextKey = "user_id"

// WithUserID stores the authenticated user's id on the request context.
func WithUserID(ctx context.Context, userID int32) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFrom extracts the authenticated user's id from the request context.
func UserIDFrom(ctx context.Context) (int32, bool) {
	id, ok := ctx.Value(userIDKey).(int32)
	return id, ok
}
