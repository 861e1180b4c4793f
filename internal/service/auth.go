package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"litmark/internal/auth"
	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/repositories"
	"litmark/internal/domain/services"
)

type authService struct {
	userRepo        repositories.UserRepository
	tokenRepo       repositories.RefreshTokenRepository
	tokens          *auth.TokenManager
	refreshTokenTTL time.Duration
	logger          *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
	tokens *auth.TokenManager,
	refreshTokenTTL time.Duration,
	logger *slog.Logger,
) services.AuthService {
	return &authService{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		tokens:          tokens,
		refreshTokenTTL: refreshTokenTTL,
		logger:          logger,
	}
}

// Register creates a new user with a hashed password and returns an initial
// token pair
func (s *authService) Register(ctx context.Context, req *services.RegisterRequest) (*models.User, *models.TokenPair, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.Length(8, 72)),
	); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		Role:      models.RoleUser,
		CreatedBy: req.Username,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}
	user.Password = ""

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user registered", "id", user.ID, "username", user.Username)

	return user, pair, nil
}

// Login verifies credentials and mints a token pair. The message never says
// whether the email or the password was wrong.
func (s *authService) Login(ctx context.Context, req *services.LoginRequest) (*models.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "id", user.ID)

	return pair, nil
}

// Refresh validates a refresh token, rotates it, and returns a fresh pair
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	stored, err := s.tokenRepo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid refresh token: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("refresh token expired: %w", domain.ErrUnauthorized)
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid refresh token: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}

	access, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	next := &models.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}
	if err := s.tokenRepo.Rotate(ctx, refreshToken, next); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Lost the race against a concurrent refresh with the same token
			return nil, fmt.Errorf("invalid refresh token: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}

	return &models.TokenPair{AccessToken: access, RefreshToken: next.Token}, nil
}

func (s *authService) issueTokenPair(ctx context.Context, user *models.User) (*models.TokenPair, error) {
	access, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refresh := &models.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, refresh); err != nil {
		return nil, err
	}

	return &models.TokenPair{AccessToken: access, RefreshToken: refresh.Token}, nil
}
