package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
)

// TokenManager mints and verifies HS256 access tokens.
type TokenManager struct {
	secret   []byte
	validity time.Duration
}

func NewTokenManager(secret []byte, validity time.Duration) *TokenManager {
	return &TokenManager{secret: secret, validity: validity}
}

// Generate mints a signed access token carrying the user identity.
func (m *TokenManager) Generate(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})

	return token.SignedString(m.secret)
}

// Verify parses and validates a token string, returning its claims.
// Any parse, signature or expiry failure maps to domain.ErrUnauthorized;
// no detail from the failure reaches the client.
func (m *TokenManager) Verify(tokenString string) (*models.AccessClaims, error) {
	claims := &models.AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, &domain.UnauthorizedError{Message: "invalid or expired token"}
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, &domain.UnauthorizedError{Message: "invalid or expired token"}
	}

	return claims, nil
}
