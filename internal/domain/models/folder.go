package models

import (
	"time"
)

type Folder struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ImageID   *int64    `json:"image_id" db:"image_id"`
	ImageURL  string    `json:"image_url,omitempty"` // Joined from images, not stored
	UserID    int64     `json:"user_id" db:"user_id"`
	ParentID  *int64    `json:"folder_id" db:"folder_id"` // NULL = root level
	IsDeleted bool      `json:"-" db:"isdeleted"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	CreatedBy string    `json:"-" db:"created_by"`
	UpdatedBy string    `json:"-" db:"updated_by"`
}

// FolderContents bundles a folder with its immediate non-deleted children.
type FolderContents struct {
	Folder  *Folder  `json:"folder"`
	Folders []Folder `json:"folders"`
	Chips   []Chip   `json:"chips"`
}
