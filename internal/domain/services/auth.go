package services

import (
	"context"

	"litmark/internal/domain/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService handles registration, credential verification and token issuance.
type AuthService interface {
	// Register creates a new user with a hashed password and returns the
	// user plus an initial token pair. Duplicate emails yield domain.ErrConflict.
	Register(ctx context.Context, req *RegisterRequest) (*models.User, *models.TokenPair, error)

	// Login verifies credentials and mints a token pair.
	// Bad credentials yield domain.ErrUnauthorized with a generic message.
	Login(ctx context.Context, req *LoginRequest) (*models.TokenPair, error)

	// Refresh validates a refresh token, rotates it, and returns a fresh pair.
	// Unknown and expired tokens yield domain.ErrUnauthorized.
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}
