package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/repositories"
)

// PostgresImageRepository implements the ImageRepository interface
type PostgresImageRepository struct {
	pool *pgxpool.Pool
}

// NewImageRepository creates a new image repository
func NewImageRepository(config *RepositoryConfig) repositories.ImageRepository {
	return &PostgresImageRepository{pool: config.Pool}
}

// Create creates a new image row
func (r *PostgresImageRepository) Create(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (url, type, name, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		image.URL,
		image.Type,
		image.Name,
		image.CreatedBy,
	).Scan(&image.ID, &image.CreatedAt, &image.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}

	return nil
}

// GetByID retrieves a non-deleted image
func (r *PostgresImageRepository) GetByID(ctx context.Context, id int64) (*models.Image, error) {
	query := `
		SELECT id, url, type, name, created_at, updated_at, created_by, updated_by
		FROM images
		WHERE id = $1 AND NOT isdeleted
	`

	var image models.Image
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.URL,
		&image.Type,
		&image.Name,
		&image.CreatedAt,
		&image.UpdatedAt,
		&image.CreatedBy,
		&image.UpdatedBy,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("image %d not found", id)}
		}
		return nil, fmt.Errorf("get image: %w", err)
	}

	return &image, nil
}

// GetByURL retrieves a non-deleted image by exact URL
func (r *PostgresImageRepository) GetByURL(ctx context.Context, url string) (*models.Image, error) {
	query := `
		SELECT id, url, type, name, created_at, updated_at, created_by, updated_by
		FROM images
		WHERE url = $1 AND NOT isdeleted
		ORDER BY id
		LIMIT 1
	`

	var image models.Image
	err := r.pool.QueryRow(ctx, query, url).Scan(
		&image.ID,
		&image.URL,
		&image.Type,
		&image.Name,
		&image.CreatedAt,
		&image.UpdatedAt,
		&image.CreatedBy,
		&image.UpdatedBy,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("image %q not found", url)}
		}
		return nil, fmt.Errorf("get image by url: %w", err)
	}

	return &image, nil
}

// List lists all non-deleted images
func (r *PostgresImageRepository) List(ctx context.Context) ([]models.Image, error) {
	query := `
		SELECT id, url, type, name, created_at, updated_at, created_by, updated_by
		FROM images
		WHERE NOT isdeleted
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	images := []models.Image{}
	for rows.Next() {
		var image models.Image
		if err := rows.Scan(
			&image.ID,
			&image.URL,
			&image.Type,
			&image.Name,
			&image.CreatedAt,
			&image.UpdatedAt,
			&image.CreatedBy,
			&image.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	return images, nil
}
