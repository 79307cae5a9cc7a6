package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Approval is the moderation state shared by books and comments. The zero of
// the workflow is pending; approve/reject transitions may be replayed in
// either direction, there is no terminal state.
type Approval string

const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "approved"
	ApprovalRejected Approval = "rejected"
)

// Book is a user submission. It stays invisible to the general public until
// a privileged reviewer approves it.
type Book struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Author      string          `gorm:"size:100" json:"author"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageURL    string          `gorm:"size:500" json:"image_url"`

	// Nullable: uncategorized books have no moderator reviewer at all.
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner   User      `gorm:"foreignKey:OwnerID" json:"-"`

	Approval Approval `gorm:"size:20;not null;default:'pending';index" json:"approval"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
