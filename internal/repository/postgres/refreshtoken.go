package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/repositories"
)

// PostgresRefreshTokenRepository implements the RefreshTokenRepository interface
type PostgresRefreshTokenRepository struct {
	pool *pgxpool.Pool
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(config *RepositoryConfig) repositories.RefreshTokenRepository {
	return &PostgresRefreshTokenRepository{pool: config.Pool}
}

// Create inserts a new refresh token row
func (r *PostgresRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, token.Token, token.UserID, token.ExpiresAt).Scan(&token.ID)
	if err != nil {
		return fmt.Errorf("create refresh token: %w", err)
	}

	return nil
}

// Find retrieves a refresh token by its opaque value
func (r *PostgresRefreshTokenRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `
		SELECT id, token, user_id, expires_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var rt models.RefreshToken
	err := r.pool.QueryRow(ctx, query, token).Scan(&rt.ID, &rt.Token, &rt.UserID, &rt.ExpiresAt)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: "refresh token not found"}
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}

	return &rt, nil
}

// Rotate atomically replaces oldToken with next. The delete and insert run
// in one transaction so a presented token can never be reused.
func (r *PostgresRefreshTokenRepository) Rotate(ctx context.Context, oldToken string, next *models.RefreshToken) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, oldToken)
		if err != nil {
			return fmt.Errorf("delete refresh token: %w", err)
		}
		if result.RowsAffected() == 0 {
			return &domain.NotFoundError{Message: "refresh token not found"}
		}

		return tx.QueryRow(ctx,
			`INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3) RETURNING id`,
			next.Token, next.UserID, next.ExpiresAt,
		).Scan(&next.ID)
	})
	if err != nil {
		return fmt.Errorf("rotate refresh token: %w", err)
	}

	return nil
}

// DeleteByUser removes all refresh tokens of a user
func (r *PostgresRefreshTokenRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete refresh tokens: %w", err)
	}

	return nil
}
