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

// sortColumns maps the public sort fields to folder table columns.
var sortColumns = map[string]string{
	services.SortByDate:     "created_at",
	services.SortByAlphabet: "name",
}

type folderService struct {
	folderRepo repositories.FolderRepository
	chipRepo   repositories.ChipRepository
	imageSvc   services.ImageService
	validator  *ResourceValidator
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	chipRepo repositories.ChipRepository,
	imageSvc services.ImageService,
	validator *ResourceValidator,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		chipRepo:   chipRepo,
		imageSvc:   imageSvc,
		validator:  validator,
		logger:     logger,
	}
}

// ListRoot lists the caller's non-deleted root folders
func (s *folderService) ListRoot(ctx context.Context, userID int64) ([]models.Folder, error) {
	return s.folderRepo.ListByParent(ctx, userID, nil, "created_at", false)
}

// ListChildren lists non-deleted folders under parentID
func (s *folderService) ListChildren(ctx context.Context, userID, parentID int64) ([]models.Folder, error) {
	if parentID <= 0 {
		return nil, fmt.Errorf("%w: folder_id must be a positive integer", domain.ErrValidation)
	}
	return s.folderRepo.ListByParent(ctx, userID, &parentID, "created_at", false)
}

// Sort lists folders under parentID ordered by the requested field
func (s *folderService) Sort(ctx context.Context, userID int64, parentID *int64, field, order string) ([]models.Folder, error) {
	column, ok := sortColumns[field]
	if !ok {
		return nil, fmt.Errorf("%w: sort must be one of date, alphabet", domain.ErrValidation)
	}

	var desc bool
	switch strings.ToLower(order) {
	case services.OrderAsc, "":
		desc = false
	case services.OrderDesc:
		desc = true
	default:
		return nil, fmt.Errorf("%w: order must be asc or desc", domain.ErrValidation)
	}

	if parentID != nil && *parentID <= 0 {
		return nil, fmt.Errorf("%w: folder_id must be a positive integer", domain.ErrValidation)
	}

	return s.folderRepo.ListByParent(ctx, userID, parentID, column, desc)
}

// Get retrieves a folder with its immediate non-deleted children
func (s *folderService) Get(ctx context.Context, id, userID int64) (*models.FolderContents, error) {
	folder, err := s.folderRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	children, err := s.folderRepo.ListByParent(ctx, userID, &id, "created_at", false)
	if err != nil {
		return nil, err
	}

	chips, err := s.chipRepo.ListByFolder(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	return &models.FolderContents{
		Folder:  folder,
		Folders: children,
		Chips:   chips,
	}, nil
}

// Create inserts a folder, assigning the default placeholder image when none
// is supplied
func (s *folderService) Create(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Parent link is immutable after creation and must reference a live
	// folder, which rules out cycles by construction.
	if req.ParentID != nil {
		if err := s.validator.ValidateFolder(ctx, *req.ParentID, req.UserID); err != nil {
			return nil, err
		}
	}

	imageID := req.ImageID
	if imageID == nil {
		def, err := s.imageSvc.GetOrCreateDefault(ctx)
		if err != nil {
			return nil, err
		}
		imageID = &def.ID
	}

	folder := &models.Folder{
		Name:      req.Name,
		ImageID:   imageID,
		UserID:    req.UserID,
		ParentID:  req.ParentID,
		CreatedBy: req.CreatedBy,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"user_id", folder.UserID,
		"parent_folder_id", folder.ParentID,
	)

	return folder, nil
}

// Update merges name/image_id/updated_by over the current row
func (s *folderService) Update(ctx context.Context, id, userID int64, req *services.UpdateFolderRequest) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		folder.Name = *req.Name
	}
	if req.ImageID != nil {
		folder.ImageID = req.ImageID
	}
	folder.UpdatedBy = req.UpdatedBy

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

// Delete soft-deletes the folder after an existence check
func (s *folderService) Delete(ctx context.Context, id, userID int64, deletedBy string) error {
	if _, err := s.folderRepo.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.folderRepo.SoftDelete(ctx, id, userID, deletedBy); err != nil {
		return err
	}

	s.logger.Info("folder deleted", "id", id, "user_id", userID)

	return nil
}
