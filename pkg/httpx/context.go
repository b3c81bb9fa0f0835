package httpx

import "context"

type ctxKey string

const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated user id set by AuthnMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(string)
	return id, ok && id != ""
}

// ContextWithUserID is exported for handler tests that skip the middleware.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}
