package service

import (
	"context"
	"fmt"

	"litmark/internal/domain/repositories"
)

// ResourceValidator validates that referenced parent resources exist and are
// not soft-deleted before allowing operations on dependent rows.
type ResourceValidator struct {
	folderRepo repositories.FolderRepository
}

// NewResourceValidator creates a new resource validator
func NewResourceValidator(folderRepo repositories.FolderRepository) *ResourceValidator {
	return &ResourceValidator{folderRepo: folderRepo}
}

// ValidateFolder ensures a folder exists, belongs to userID and is not
// soft-deleted. Returns domain.ErrNotFound otherwise.
func (v *ResourceValidator) ValidateFolder(ctx context.Context, folderID, userID int64) error {
	if _, err := v.folderRepo.GetByID(ctx, folderID, userID); err != nil {
		return fmt.Errorf("invalid folder: %w", err)
	}
	return nil
}
