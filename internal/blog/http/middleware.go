package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/inkpress/internal/blog/paths"
	"github.com/aussiebroadwan/inkpress/internal/blog/session"
	"github.com/aussiebroadwan/inkpress/pkg/httpx"
)

type ctxKey string

const ctxKeyUserID ctxKey = "user_id"

// RequireUser guards a route: requests without an authenticated session are
// redirected to the login form and the downstream handler is never invoked.
// Authenticated requests carry the bound user id in the request context.
func RequireUser(sessions *session.Manager, p *paths.Creator) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := sessions.UserID(r)
			if !ok {
				http.Redirect(w, r, p.LoginRequired(), http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFromContext reports the user id bound by RequireUser. A missing id
// on a guarded route is an internal error, not a redirect condition.
func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxKeyUserID).(string)
	return userID, ok && userID != ""
}
