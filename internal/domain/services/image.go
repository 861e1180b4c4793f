package services

import (
	"context"
	"io"

	"litmark/internal/domain/models"
)

// ImageUpload carries an inbound image file from a multipart request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type UploadImageRequest struct {
	Type      string // one of models.ImageType* values
	Name      string // display name; defaults to the filename
	Upload    *ImageUpload
	CreatedBy string
}

// ImageService stores image files in the object store and tracks their metadata.
type ImageService interface {
	// Upload stores the file, inserts the image row and returns it.
	// The stored URL is immutable afterwards.
	Upload(ctx context.Context, req *UploadImageRequest) (*models.Image, error)

	// List lists all non-deleted images.
	List(ctx context.Context) ([]models.Image, error)

	// GetOrCreateDefault returns the shared placeholder image, lazily
	// creating its row on first use.
	GetOrCreateDefault(ctx context.Context) (*models.Image, error)
}
