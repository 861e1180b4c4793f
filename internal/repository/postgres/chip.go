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

// PostgresChipRepository implements the ChipRepository interface
type PostgresChipRepository struct {
	pool *pgxpool.Pool
}

// NewChipRepository creates a new chip repository
func NewChipRepository(config *RepositoryConfig) repositories.ChipRepository {
	return &PostgresChipRepository{pool: config.Pool}
}

const chipSelect = `
	SELECT c.id, c.name, c.url, c.image_id, COALESCE(i.url, ''), c.folder_id, c.user_id,
	       c.created_at, c.updated_at, c.created_by, c.updated_by
	FROM chips c
	LEFT JOIN images i ON i.id = c.image_id AND NOT i.isdeleted
`

// Create creates a new chip
func (r *PostgresChipRepository) Create(ctx context.Context, chip *models.Chip) error {
	query := `
		INSERT INTO chips (name, url, image_id, folder_id, user_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		chip.Name,
		chip.URL,
		chip.ImageID,
		chip.FolderID,
		chip.UserID,
		chip.CreatedBy,
	).Scan(&chip.ID, &chip.CreatedAt, &chip.UpdatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return &domain.NotFoundError{Message: fmt.Sprintf("folder %d not found", chip.FolderID)}
		}
		return fmt.Errorf("create chip: %w", err)
	}

	return nil
}

// GetByID retrieves a non-deleted chip owned by userID
func (r *PostgresChipRepository) GetByID(ctx context.Context, id, userID int64) (*models.Chip, error) {
	query := chipSelect + `
		WHERE c.id = $1 AND c.user_id = $2 AND NOT c.isdeleted
	`

	chip, err := r.scanOne(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("chip %d not found", id)}
		}
		return nil, fmt.Errorf("get chip: %w", err)
	}

	return chip, nil
}

// ListByUser lists all non-deleted chips of userID
func (r *PostgresChipRepository) ListByUser(ctx context.Context, userID int64) ([]models.Chip, error) {
	query := chipSelect + `
		WHERE c.user_id = $1 AND NOT c.isdeleted
		ORDER BY c.created_at
	`

	return r.list(ctx, query, userID)
}

// ListByFolder lists non-deleted chips of userID inside folderID
func (r *PostgresChipRepository) ListByFolder(ctx context.Context, userID, folderID int64) ([]models.Chip, error) {
	query := chipSelect + `
		WHERE c.user_id = $1 AND c.folder_id = $2 AND NOT c.isdeleted
		ORDER BY c.created_at
	`

	return r.list(ctx, query, userID, folderID)
}

// Update persists name/url/folder_id/image_id/updated_by changes
func (r *PostgresChipRepository) Update(ctx context.Context, chip *models.Chip) error {
	query := `
		UPDATE chips
		SET name = $1, url = $2, folder_id = $3, image_id = $4, updated_by = $5, updated_at = now()
		WHERE id = $6 AND user_id = $7 AND NOT isdeleted
	`

	result, err := r.pool.Exec(ctx, query,
		chip.Name,
		chip.URL,
		chip.FolderID,
		chip.ImageID,
		chip.UpdatedBy,
		chip.ID,
		chip.UserID,
	)
	if err != nil {
		if isPgForeignKeyError(err) {
			return &domain.NotFoundError{Message: fmt.Sprintf("folder %d not found", chip.FolderID)}
		}
		return fmt.Errorf("update chip: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("chip %d not found", chip.ID)}
	}

	return nil
}

// SoftDelete marks a chip deleted
func (r *PostgresChipRepository) SoftDelete(ctx context.Context, id, userID int64, deletedBy string) error {
	query := `
		UPDATE chips
		SET isdeleted = true, updated_by = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3 AND NOT isdeleted
	`

	result, err := r.pool.Exec(ctx, query, deletedBy, id, userID)
	if err != nil {
		return fmt.Errorf("delete chip: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("chip %d not found", id)}
	}

	return nil
}

func (r *PostgresChipRepository) scanOne(row pgx.Row) (*models.Chip, error) {
	var chip models.Chip
	err := row.Scan(
		&chip.ID,
		&chip.Name,
		&chip.URL,
		&chip.ImageID,
		&chip.ImageURL,
		&chip.FolderID,
		&chip.UserID,
		&chip.CreatedAt,
		&chip.UpdatedAt,
		&chip.CreatedBy,
		&chip.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &chip, nil
}

func (r *PostgresChipRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Chip, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chips: %w", err)
	}
	defer rows.Close()

	chips := []models.Chip{}
	for rows.Next() {
		var chip models.Chip
		if err := rows.Scan(
			&chip.ID,
			&chip.Name,
			&chip.URL,
			&chip.ImageID,
			&chip.ImageURL,
			&chip.FolderID,
			&chip.UserID,
			&chip.CreatedAt,
			&chip.UpdatedAt,
			&chip.CreatedBy,
			&chip.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan chip: %w", err)
		}
		chips = append(chips, chip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list chips: %w", err)
	}

	return chips, nil
}
