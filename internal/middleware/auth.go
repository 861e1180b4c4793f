package middleware

import (
	"net/http"
	"strings"

	"litmark/internal/auth"
	"litmark/internal/httputil"
)

// Auth guards every route except the public paths. An entry ending in "/" is
// treated as a prefix, anything else must match exactly, so "/health" does not
// open up "/healthz". It verifies the bearer token and attaches the decoded
// identity to the request context; invalid or missing tokens are rejected
// before any handler or database work happens.
func Auth(tokens *auth.TokenManager, publicPaths ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range publicPaths {
				if r.URL.Path == p || (strings.HasSuffix(p, "/") && strings.HasPrefix(r.URL.Path, p)) {
					next.ServeHTTP(w, r)
					return
				}
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "Missing authorization header")
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithClaims(r, claims))
		})
	}
}
