package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups books and owns the set of users allowed to moderate them.
// A category with no moderators is reviewable by admins only.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Moderators []User `gorm:"many2many:category_moderators" json:"moderators,omitempty"`
}
