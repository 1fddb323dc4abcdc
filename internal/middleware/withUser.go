package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/chlee-dev/gif-catalog/internal/app/service"
)

// ContextKey is a custom type used for keys in the context.
// It helps prevent collisions in context keys.
type ContextKey string

// UserIDKey is the key used to store and retrieve the user ID from the context.
const UserIDKey ContextKey = "userID"

// InjectUserID adds the user ID to the request context, making it accessible for
// downstream handlers.
func InjectUserID(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

// WithUser resolves the caller identity and injects it into the request
// context. Resolution order: the userId query parameter, then the
// Authorization Bearer token. Create handlers additionally fall back to
// the userId field of the request body, which a middleware cannot read
// without consuming it. An empty result is left for handlers to reject.
func WithUser(auth service.TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.URL.Query().Get("userId")

			if userID == "" {
				if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
					userID = auth.UserIDFromToken(strings.TrimPrefix(header, "Bearer "))
				}
			}

			next.ServeHTTP(w, InjectUserID(r, userID))
		})
	}
}

// UserIDFromContext returns the user id injected by WithUser, or the
// empty string when no identity was resolved.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}
