package middleware

import (
	"net/http"
)

// KnownRoutes sends requests that match no registered mux pattern straight to
// fallback before the rest of the chain runs, so unknown URLs answer the fixed
// 404 whether or not the caller presented a token. The mux resolves unmatched
// paths to its "/" catch-all (or to an empty pattern on a method mismatch);
// both count as unmatched here.
func KnownRoutes(mux *http.ServeMux, fallback http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, pattern := mux.Handler(r); pattern == "" || pattern == "/" {
				fallback.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
