package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"litmark/internal/domain"
	"litmark/internal/domain/models"
	"litmark/internal/domain/repositories"
)

// Columns the folder listing may be ordered by. Guards the identifier that
// is interpolated into the ORDER BY clause.
var folderOrderColumns = map[string]bool{
	"created_at": true,
	"name":       true,
}

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool *pgxpool.Pool
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{pool: config.Pool}
}

// Create creates a new folder
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := `
		INSERT INTO folders (name, image_id, user_id, folder_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		folder.Name,
		folder.ImageID,
		folder.UserID,
		folder.ParentID,
		folder.CreatedBy,
	).Scan(&folder.ID, &folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return &domain.NotFoundError{Message: "parent folder not found"}
		}
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// GetByID retrieves a non-deleted folder owned by userID, joined with its image URL
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id, userID int64) (*models.Folder, error) {
	query := `
		SELECT f.id, f.name, f.image_id, COALESCE(i.url, ''), f.user_id, f.folder_id,
		       f.created_at, f.updated_at, f.created_by, f.updated_by
		FROM folders f
		LEFT JOIN images i ON i.id = f.image_id AND NOT i.isdeleted
		WHERE f.id = $1 AND f.user_id = $2 AND NOT f.isdeleted
	`

	var folder models.Folder
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&folder.ID,
		&folder.Name,
		&folder.ImageID,
		&folder.ImageURL,
		&folder.UserID,
		&folder.ParentID,
		&folder.CreatedAt,
		&folder.UpdatedAt,
		&folder.CreatedBy,
		&folder.UpdatedBy,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("folder %d not found", id)}
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}

// ListByParent lists non-deleted folders under parentID (nil = root level)
func (r *PostgresFolderRepository) ListByParent(ctx context.Context, userID int64, parentID *int64, orderBy string, desc bool) ([]models.Folder, error) {
	if !folderOrderColumns[orderBy] {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown order column %q", orderBy)}
	}
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	var query string
	var args []interface{}

	base := `
		SELECT f.id, f.name, f.image_id, COALESCE(i.url, ''), f.user_id, f.folder_id,
		       f.created_at, f.updated_at, f.created_by, f.updated_by
		FROM folders f
		LEFT JOIN images i ON i.id = f.image_id AND NOT i.isdeleted
	`

	if parentID == nil {
		query = base + fmt.Sprintf(`
			WHERE f.user_id = $1 AND f.folder_id IS NULL AND NOT f.isdeleted
			ORDER BY f.%s %s
		`, orderBy, direction)
		args = []interface{}{userID}
	} else {
		query = base + fmt.Sprintf(`
			WHERE f.user_id = $1 AND f.folder_id = $2 AND NOT f.isdeleted
			ORDER BY f.%s %s
		`, orderBy, direction)
		args = []interface{}{userID, *parentID}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(
			&folder.ID,
			&folder.Name,
			&folder.ImageID,
			&folder.ImageURL,
			&folder.UserID,
			&folder.ParentID,
			&folder.CreatedAt,
			&folder.UpdatedAt,
			&folder.CreatedBy,
			&folder.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	return folders, nil
}

// Update persists name/image_id/updated_by changes
func (r *PostgresFolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	query := `
		UPDATE folders
		SET name = $1, image_id = $2, updated_by = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5 AND NOT isdeleted
	`

	result, err := r.pool.Exec(ctx, query,
		folder.Name,
		folder.ImageID,
		folder.UpdatedBy,
		folder.ID,
		folder.UserID,
	)
	if err != nil {
		return fmt.Errorf("update folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("folder %d not found", folder.ID)}
	}

	return nil
}

// SoftDelete marks a folder deleted
func (r *PostgresFolderRepository) SoftDelete(ctx context.Context, id, userID int64, deletedBy string) error {
	query := `
		UPDATE folders
		SET isdeleted = true, updated_by = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3 AND NOT isdeleted
	`

	result, err := r.pool.Exec(ctx, query, deletedBy, id, userID)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("folder %d not found", id)}
	}

	return nil
}
