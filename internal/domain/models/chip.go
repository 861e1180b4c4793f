package models

import (
	"time"
)

// Chip is a single bookmark entry belonging to a folder.
type Chip struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	URL       string    `json:"url" db:"url"`
	ImageID   *int64    `json:"image_id" db:"image_id"`
	ImageURL  string    `json:"image_url,omitempty"` // Joined from images, not stored
	FolderID  int64     `json:"folder_id" db:"folder_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	IsDeleted bool      `json:"-" db:"isdeleted"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	CreatedBy string    `json:"-" db:"created_by"`
	UpdatedBy string    `json:"-" db:"updated_by"`
}
