package models

import (
	"time"
)

// ImageType values identify which entity kind an image belongs to.
const (
	ImageTypeUser   = "user"
	ImageTypeFolder = "folder"
	ImageTypeChip   = "chip"
)

// ValidImageType reports whether t is a recognized owning-entity kind.
func ValidImageType(t string) bool {
	switch t {
	case ImageTypeUser, ImageTypeFolder, ImageTypeChip:
		return true
	}
	return false
}

type Image struct {
	ID        int64     `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"` // Immutable once set
	Type      string    `json:"type" db:"type"`
	Name      string    `json:"name" db:"name"`
	IsDeleted bool      `json:"-" db:"isdeleted"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	CreatedBy string    `json:"-" db:"created_by"`
	UpdatedBy string    `json:"-" db:"updated_by"`
}
