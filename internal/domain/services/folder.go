package services

import (
	"context"

	"litmark/internal/domain/models"
)

// Sort fields accepted by FolderService.Sort. They are mapped to column
// names inside the service; anything else is rejected.
const (
	SortByDate     = "date"
	SortByAlphabet = "alphabet"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

type CreateFolderRequest struct {
	Name      string `json:"name"`
	ParentID  *int64 `json:"folder_id"`
	ImageID   *int64 `json:"image_id"`
	UserID    int64  `json:"-"`
	CreatedBy string `json:"-"`
}

type UpdateFolderRequest struct {
	Name      *string `json:"name"`
	ImageID   *int64  `json:"image_id"`
	UpdatedBy string  `json:"-"`
}

// FolderService manages the user-owned folder tree.
type FolderService interface {
	// ListRoot lists the caller's non-deleted root folders. An empty list is valid.
	ListRoot(ctx context.Context, userID int64) ([]models.Folder, error)

	// ListChildren lists non-deleted folders under parentID.
	// parentID must be positive, otherwise domain.ErrValidation.
	ListChildren(ctx context.Context, userID, parentID int64) ([]models.Folder, error)

	// Sort lists folders under parentID (nil = root) ordered by field
	// ("date" or "alphabet") and order ("asc" default, or "desc").
	// Unrecognized fields yield domain.ErrValidation.
	Sort(ctx context.Context, userID int64, parentID *int64, field, order string) ([]models.Folder, error)

	// Get retrieves a folder with its immediate non-deleted children.
	Get(ctx context.Context, id, userID int64) (*models.FolderContents, error)

	// Create inserts a folder, assigning the default placeholder image when
	// none is supplied. The parent, when given, must exist and not be deleted.
	Create(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)

	// Update merges name/image_id/updated_by over the current row.
	Update(ctx context.Context, id, userID int64, req *UpdateFolderRequest) (*models.Folder, error)

	// Delete soft-deletes the folder after an existence check.
	Delete(ctx context.Context, id, userID int64, deletedBy string) error
}
