package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{pool: config.Pool}
}

// Create creates a new user
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password, role, image_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Password,
		user.Role,
		user.ImageID,
		user.CreatedBy,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if isPgDuplicateError(err) {
			return &domain.ConflictError{Message: fmt.Sprintf("email %q already exists", user.Email)}
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByID retrieves a non-deleted user joined with its image URL
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.role, u.image_id,
		       COALESCE(i.url, ''), u.created_at, u.updated_at, u.created_by, u.updated_by
		FROM users u
		LEFT JOIN images i ON i.id = u.image_id AND NOT i.isdeleted
		WHERE u.id = $1 AND NOT u.isdeleted
	`

	var user models.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Role,
		&user.ImageID,
		&user.ImageURL,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.CreatedBy,
		&user.UpdatedBy,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("user %d not found", id)}
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a non-deleted user including the password hash
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, username, email, password, role, image_id, created_at, updated_at
		FROM users
		WHERE email = $1 AND NOT isdeleted
	`

	var user models.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.ImageID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("user %q not found", email)}
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// Update persists username/image_id/updated_by changes
func (r *PostgresUserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET username = $1, image_id = $2, updated_by = $3, updated_at = now()
		WHERE id = $4 AND NOT isdeleted
	`

	result, err := r.pool.Exec(ctx, query,
		user.Username,
		user.ImageID,
		user.UpdatedBy,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("user %d not found", user.ID)}
	}

	return nil
}

// SoftDelete marks a user deleted
func (r *PostgresUserRepository) SoftDelete(ctx context.Context, id int64, deletedBy string) error {
	query := `
		UPDATE users
		SET isdeleted = true, updated_by = $1, updated_at = now()
		WHERE id = $2 AND NOT isdeleted
	`

	result, err := r.pool.Exec(ctx, query, deletedBy, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("user %d not found", id)}
	}

	return nil
}
