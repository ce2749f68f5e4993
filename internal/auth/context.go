package auth

import "context"

type userIDContextKey struct{}

// ContextWithUserID stores the authenticated account id in the context.
// The auth middleware sets it once per request; handlers then pass the
// id explicitly into every repository call.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int)
	return userID, ok
}
