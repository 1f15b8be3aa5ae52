package http

import (
	"context"
	"net/http"

	"github.com/MaiadaMuhammed/AYN/pkg/httputil"
	"github.com/MaiadaMuhammed/AYN/pkg/logger"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/session"
)

// SessionTokenHeader carries the session token issued at sign-in.
const SessionTokenHeader = "X-Session-Token"

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const userKey contextKey = "user"

// SessionFromHeader resolves the session token into a user and stores it in
// the request context. Requests without a valid token stay anonymous: most
// routes work without a session, only the cart write gate and the admin panel
// check the resolved user.
func SessionFromHeader(registry *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if token := r.Header.Get(SessionTokenHeader); token != "" {
				if user, ok := registry.Get(token); ok {
					ctx = context.WithValue(ctx, userKey, &user)
					ctx = logger.WithUserID(ctx, user.ID)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userFromContext returns the session user, or nil for anonymous requests.
func userFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey).(*domain.User)
	return user
}

// RequireSession rejects anonymous requests with 401.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userFromContext(r.Context()) == nil {
			httputil.WriteJSON(w, http.StatusUnauthorized, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose session user is not on the admin
// allow-list. The flag is cosmetic, not real authorization.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		if user == nil {
			httputil.WriteJSON(w, http.StatusUnauthorized, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
			})
			return
		}
		if !user.IsAdmin {
			httputil.WriteJSON(w, http.StatusForbidden, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "FORBIDDEN", Message: "admin access required"},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
