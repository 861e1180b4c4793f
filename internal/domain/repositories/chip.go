package repositories

import (
	"context"

	"litmark/internal/domain/models"
)

// ChipRepository defines the interface for chip (bookmark) data access.
// Every read filters out soft-deleted rows.
type ChipRepository interface {
	// Create inserts a new chip and fills in the generated ID and audit timestamps.
	Create(ctx context.Context, chip *models.Chip) error

	// GetByID retrieves a non-deleted chip owned by userID, joined with its image URL.
	GetByID(ctx context.Context, id, userID int64) (*models.Chip, error)

	// ListByUser lists all non-deleted chips of userID.
	ListByUser(ctx context.Context, userID int64) ([]models.Chip, error)

	// ListByFolder lists non-deleted chips of userID inside folderID.
	ListByFolder(ctx context.Context, userID, folderID int64) ([]models.Chip, error)

	// Update persists name/url/folder_id/image_id/updated_by changes.
	Update(ctx context.Context, chip *models.Chip) error

	// SoftDelete marks a chip deleted. Returns domain.ErrNotFound when the
	// row is missing or already deleted.
	SoftDelete(ctx context.Context, id, userID int64, deletedBy string) error
}
