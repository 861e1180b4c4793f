package repositories

import (
	"context"

	"litmark/internal/domain/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID and audit timestamps.
	// Returns domain.ErrConflict when the email is already taken.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a non-deleted user joined with its image URL.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByEmail retrieves a non-deleted user including the password hash.
	// Used by the login path only.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Update persists username/image_id/updated_by changes.
	Update(ctx context.Context, user *models.User) error

	// SoftDelete marks a user deleted. Returns domain.ErrNotFound when the
	// row is missing or already deleted.
	SoftDelete(ctx context.Context, id int64, deletedBy string) error
}
