package repositories

import (
	"context"

	"litmark/internal/domain/models"
)

// ImageRepository defines the interface for image metadata access.
// Image URLs are immutable once stored.
type ImageRepository interface {
	// Create inserts a new image row and fills in the generated ID.
	Create(ctx context.Context, image *models.Image) error

	// GetByID retrieves a non-deleted image.
	GetByID(ctx context.Context, id int64) (*models.Image, error)

	// GetByURL retrieves a non-deleted image by exact URL. Used to look up
	// the shared default placeholder before lazily creating it.
	GetByURL(ctx context.Context, url string) (*models.Image, error)

	// List lists all non-deleted images.
	List(ctx context.Context) ([]models.Image, error)
}
