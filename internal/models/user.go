package models

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the identity provider's subject. Rows are provisioned lazily
// the first time a token for an unknown subject is seen.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:255" json:"email"`
	FirstName string    `gorm:"size:150" json:"first_name"`
	LastName  string    `gorm:"size:150" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile *UserProfile `gorm:"foreignKey:UserID" json:"-"`
}

// UserProfile carries role flags and shipping contact data. A user without a
// profile row is a plain authenticated user; role checks must tolerate its
// absence.
type UserProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	// Independent role flags, not an enum: a user can hold both or neither.
	IsAdmin     bool `gorm:"not null;default:false" json:"is_admin"`
	IsModerator bool `gorm:"not null;default:false" json:"is_moderator"`

	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100" json:"city"`
	PostalCode  string `gorm:"size:20" json:"postal_code"`
	PhoneNumber string `gorm:"size:30" json:"phone_number"`

	SelectedThemeID *uuid.UUID `gorm:"type:uuid" json:"selected_theme_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
