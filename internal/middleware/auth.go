package middleware

import (
	"net/http"

	"stravigo-admin/internal/session"
)

// RequireAuth gates the routed API behind the session marker. It is the only
// guard in the system: a request either carries an authenticated session or
// it is turned away.
func RequireAuth(sm session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sm.GetBool(r.Context(), session.AuthenticatedKey) {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
