package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the JWT claims structure minted for access tokens.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken is a server-stored opaque token, rotated on every use.
type RefreshToken struct {
	ID        int64     `db:"id"`
	Token     string    `db:"token"`
	UserID    int64     `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
}
