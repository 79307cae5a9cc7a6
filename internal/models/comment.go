package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user review on a book. Unlike the legacy schema's nullable
// boolean, approval is an explicit tri-state so a rejected comment stays
// distinguishable from a never-reviewed one.
type Comment struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookID  uuid.UUID `gorm:"type:uuid;not null;index" json:"book_id"`
	Book    Book      `gorm:"foreignKey:BookID" json:"-"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User    User      `gorm:"foreignKey:UserID" json:"-"`
	Content string    `gorm:"size:2000;not null" json:"content"`

	Approval Approval `gorm:"size:20;not null;default:'pending';index" json:"approval"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
