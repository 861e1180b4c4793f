package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/repositories"
	"litmark/internal/domain/services"
)

type userService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
	imageSvc  services.ImageService
	logger    *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
	imageSvc services.ImageService,
	logger *slog.Logger,
) services.UserService {
	return &userService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		imageSvc:  imageSvc,
		logger:    logger,
	}
}

// Create inserts a user, uploading the optional profile image first
func (s *userService) Create(ctx context.Context, req *services.CreateUserRequest) (*models.User, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.Length(8, 72)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	var imageID *int64
	if req.Image != nil {
		image, err := s.imageSvc.Upload(ctx, &services.UploadImageRequest{
			Type:      models.ImageTypeUser,
			Upload:    req.Image,
			CreatedBy: req.CreatedBy,
		})
		if err != nil {
			return nil, err
		}
		imageID = &image.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		Role:      role,
		ImageID:   imageID,
		CreatedBy: req.CreatedBy,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "id", user.ID, "username", user.Username)

	// Never hand the hash back up the stack
	user.Password = ""

	return user, nil
}

// Get retrieves a non-deleted user without the password hash
func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Update merges the patch over the current row
func (s *userService) Update(ctx context.Context, id int64, req *services.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		if strings.TrimSpace(*req.Username) == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", domain.ErrValidation)
		}
		user.Username = *req.Username
	}
	if req.ImageID != nil {
		user.ImageID = req.ImageID
	}
	user.UpdatedBy = req.UpdatedBy

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete soft-deletes the user after an existence check and revokes all of
// their refresh tokens so outstanding sessions cannot be renewed
func (s *userService) Delete(ctx context.Context, id int64, deletedBy string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.SoftDelete(ctx, id, deletedBy); err != nil {
		return err
	}

	if err := s.tokenRepo.DeleteByUser(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "id", id)

	return nil
}
