package services

import (
	"context"

	"litmark/internal/domain/models"
)

type CreateUserRequest struct {
	Username  string
	Email     string
	Password  string
	Role      string
	Image     *ImageUpload // optional profile image
	CreatedBy string
}

type UpdateUserRequest struct {
	Username  *string `json:"username"`
	ImageID   *int64  `json:"image_id"`
	UpdatedBy string  `json:"-"`
}

// UserService manages user rows (profile CRUD, distinct from authentication).
type UserService interface {
	// Create inserts a user, uploading the optional profile image first.
	Create(ctx context.Context, req *CreateUserRequest) (*models.User, error)

	// Get retrieves a non-deleted user without the password hash.
	Get(ctx context.Context, id int64) (*models.User, error)

	// Update merges the patch over the current row. An empty username in the
	// patch yields domain.ErrValidation.
	Update(ctx context.Context, id int64, req *UpdateUserRequest) (*models.User, error)

	// Delete soft-deletes the user after an existence check.
	Delete(ctx context.Context, id int64, deletedBy string) error
}
