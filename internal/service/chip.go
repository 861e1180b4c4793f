package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/repositories"
	"litmark/internal/domain/services"
)

type chipService struct {
	chipRepo  repositories.ChipRepository
	validator *ResourceValidator
	logger    *slog.Logger
}

// NewChipService creates a new chip service
func NewChipService(
	chipRepo repositories.ChipRepository,
	validator *ResourceValidator,
	logger *slog.Logger,
) services.ChipService {
	return &chipService{
		chipRepo:  chipRepo,
		validator: validator,
		logger:    logger,
	}
}

// List lists all the caller's non-deleted chips
func (s *chipService) List(ctx context.Context, userID int64) ([]models.Chip, error) {
	return s.chipRepo.ListByUser(ctx, userID)
}

// Get retrieves a single non-deleted chip
func (s *chipService) Get(ctx context.Context, id, userID int64) (*models.Chip, error) {
	return s.chipRepo.GetByID(ctx, id, userID)
}

// Create inserts a chip after validating the target folder
func (s *chipService) Create(ctx context.Context, req *services.CreateChipRequest) (*models.Chip, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.FolderID, validation.Required, validation.Min(int64(1))),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// A chip must land in a live folder; a soft-deleted or missing target
	// fails here rather than succeeding silently.
	if err := s.validator.ValidateFolder(ctx, req.FolderID, req.UserID); err != nil {
		return nil, err
	}

	chip := &models.Chip{
		Name:      req.Name,
		URL:       req.URL,
		ImageID:   req.ImageID,
		FolderID:  req.FolderID,
		UserID:    req.UserID,
		CreatedBy: req.CreatedBy,
	}

	if err := s.chipRepo.Create(ctx, chip); err != nil {
		return nil, err
	}

	s.logger.Info("chip created",
		"id", chip.ID,
		"name", chip.Name,
		"folder_id", chip.FolderID,
		"user_id", chip.UserID,
	)

	return chip, nil
}

// Update merges the patch over the current row
func (s *chipService) Update(ctx context.Context, id, userID int64, req *services.UpdateChipRequest) (*models.Chip, error) {
	chip, err := s.chipRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		chip.Name = *req.Name
	}
	if req.URL != nil {
		chip.URL = *req.URL
	}
	if req.FolderID != nil {
		if err := s.validator.ValidateFolder(ctx, *req.FolderID, userID); err != nil {
			return nil, err
		}
		chip.FolderID = *req.FolderID
	}
	if req.ImageID != nil {
		chip.ImageID = req.ImageID
	}
	chip.UpdatedBy = req.UpdatedBy

	if err := s.chipRepo.Update(ctx, chip); err != nil {
		return nil, err
	}

	return chip, nil
}

// Delete soft-deletes the chip after an existence check
func (s *chipService) Delete(ctx context.Context, id, userID int64, deletedBy string) error {
	if _, err := s.chipRepo.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.chipRepo.SoftDelete(ctx, id, userID, deletedBy); err != nil {
		return err
	}

	s.logger.Info("chip deleted", "id", id, "user_id", userID)

	return nil
}
