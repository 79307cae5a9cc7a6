package models

import (
	"time"

	"github.com/google/uuid"
)

// Theme is a named storefront color set. Users may pick one through their
// profile; exactly one theme is flagged as the storefront default.
type Theme struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	PrimaryColor   string    `gorm:"size:20;not null" json:"primary_color"`
	SecondaryColor string    `gorm:"size:20;not null" json:"secondary_color"`
	AccentColor    string    `gorm:"size:20;not null" json:"accent_color"`
	IsDefault      bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt      time.Time `json:"created_at"`
}
