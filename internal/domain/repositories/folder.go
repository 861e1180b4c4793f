package repositories

import (
	"context"

	"litmark/internal/domain/models"
)

// FolderRepository defines the interface for folder data access.
// Every read filters out soft-deleted rows.
type FolderRepository interface {
	// Create inserts a new folder and fills in the generated ID and audit timestamps.
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a non-deleted folder owned by userID, joined with its image URL.
	GetByID(ctx context.Context, id, userID int64) (*models.Folder, error)

	// ListByParent lists non-deleted folders of userID under parentID
	// (nil parentID = root level), ordered by orderBy. orderBy must be a
	// column name from the service allow-list; desc reverses the order.
	ListByParent(ctx context.Context, userID int64, parentID *int64, orderBy string, desc bool) ([]models.Folder, error)

	// Update persists name/image_id/updated_by changes.
	Update(ctx context.Context, folder *models.Folder) error

	// SoftDelete marks a folder deleted. Returns domain.ErrNotFound when the
	// row is missing or already deleted.
	SoftDelete(ctx context.Context, id, userID int64, deletedBy string) error
}
