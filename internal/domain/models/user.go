package models

import (
	"time"
)

// Role values stored on a user row.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, never serialized
	Role      string    `json:"role" db:"role"`
	ImageID   *int64    `json:"image_id" db:"image_id"`
	ImageURL  string    `json:"image_url,omitempty"` // Joined from images, not stored
	IsDeleted bool      `json:"-" db:"isdeleted"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	CreatedBy string    `json:"-" db:"created_by"`
	UpdatedBy string    `json:"-" db:"updated_by"`
}
