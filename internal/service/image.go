package service

import (
	"context"
	"fmt"
	"log/slog"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/repositories"
	"litmark/internal/domain/services"
	"litmark/internal/storage"
)

type imageService struct {
	imageRepo       repositories.ImageRepository
	store           storage.ObjectStore
	defaultImageURL string
	logger          *slog.Logger
}

// NewImageService creates a new image service
func NewImageService(
	imageRepo repositories.ImageRepository,
	store storage.ObjectStore,
	defaultImageURL string,
	logger *slog.Logger,
) services.ImageService {
	return &imageService{
		imageRepo:       imageRepo,
		store:           store,
		defaultImageURL: defaultImageURL,
		logger:          logger,
	}
}

// Upload stores the file in the object store and inserts the image row.
// The upload and the insert are not atomic; a failure between the two leaves
// an orphaned object with no referencing row.
func (s *imageService) Upload(ctx context.Context, req *services.UploadImageRequest) (*models.Image, error) {
	if !models.ValidImageType(req.Type) {
		return nil, fmt.Errorf("%w: image type must be one of user, folder, chip", domain.ErrValidation)
	}
	if req.Upload == nil {
		return nil, fmt.Errorf("%w: image file is required", domain.ErrValidation)
	}

	url, err := s.store.Put(ctx, req.Upload.Filename, req.Upload.ContentType, req.Upload.Body)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	name := req.Name
	if name == "" {
		name = req.Upload.Filename
	}

	image := &models.Image{
		URL:       url,
		Type:      req.Type,
		Name:      name,
		CreatedBy: req.CreatedBy,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}

	s.logger.Info("image uploaded",
		"id", image.ID,
		"type", image.Type,
		"url", image.URL,
	)

	return image, nil
}

// List lists all non-deleted images
func (s *imageService) List(ctx context.Context) ([]models.Image, error) {
	return s.imageRepo.List(ctx)
}

// GetOrCreateDefault returns the shared placeholder image row, creating it on
// first use. Concurrent first calls may race and insert twice; GetByURL picks
// the lowest id so later reads converge on one row.
func (s *imageService) GetOrCreateDefault(ctx context.Context) (*models.Image, error) {
	image, err := s.imageRepo.GetByURL(ctx, s.defaultImageURL)
	if err == nil {
		return image, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	image = &models.Image{
		URL:       s.defaultImageURL,
		Type:      models.ImageTypeFolder,
		Name:      "default",
		CreatedBy: "system",
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}

	s.logger.Info("default image created", "id", image.ID, "url", image.URL)

	return image, nil
}
