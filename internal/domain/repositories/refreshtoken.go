package repositories

import (
	"context"

	"litmark/internal/domain/models"
)

// RefreshTokenRepository stores server-side refresh tokens.
type RefreshTokenRepository interface {
	// Create inserts a new refresh token row.
	Create(ctx context.Context, token *models.RefreshToken) error

	// Find retrieves a refresh token by its opaque value.
	// Returns domain.ErrNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Rotate atomically deletes the old token and inserts the replacement,
	// so a presented token can never be reused.
	Rotate(ctx context.Context, oldToken string, next *models.RefreshToken) error

	// DeleteByUser removes all refresh tokens of a user (logout everywhere,
	// account soft-deletion).
	DeleteByUser(ctx context.Context, userID int64) error
}
