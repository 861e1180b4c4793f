package services

import (
	"context"

	"litmark/internal/domain/models"
)

type CreateChipRequest struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	FolderID  int64  `json:"folder_id"`
	ImageID   *int64 `json:"image_id"`
	UserID    int64  `json:"-"`
	CreatedBy string `json:"-"`
}

type UpdateChipRequest struct {
	Name      *string `json:"name"`
	URL       *string `json:"url"`
	FolderID  *int64  `json:"folder_id"`
	ImageID   *int64  `json:"image_id"`
	UpdatedBy string  `json:"-"`
}

// ChipService manages bookmarks. A chip always references an existing,
// non-deleted folder of the same user.
type ChipService interface {
	// List lists all the caller's non-deleted chips.
	List(ctx context.Context, userID int64) ([]models.Chip, error)

	// Get retrieves a single non-deleted chip.
	Get(ctx context.Context, id, userID int64) (*models.Chip, error)

	// Create inserts a chip after validating the target folder exists and is
	// not soft-deleted.
	Create(ctx context.Context, req *CreateChipRequest) (*models.Chip, error)

	// Update merges the patch over the current row; a changed folder_id is
	// revalidated against live folders.
	Update(ctx context.Context, id, userID int64, req *UpdateChipRequest) (*models.Chip, error)

	// Delete soft-deletes the chip after an existence check.
	Delete(ctx context.Context, id, userID int64, deletedBy string) error
}
