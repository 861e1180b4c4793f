package httputil

import (
	"context"
	"net/http"

	"litmark/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const claimsKey contextKey = "claims"

// WithClaims attaches the verified token claims to the request context
func WithClaims(r *http.Request, claims *models.AccessClaims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsKey, claims)
	return r.WithContext(ctx)
}

// GetClaims retrieves the verified claims from context, nil if not present
func GetClaims(r *http.Request) *models.AccessClaims {
	claims, _ := r.Context().Value(claimsKey).(*models.AccessClaims)
	return claims
}
