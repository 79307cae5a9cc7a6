package models

import (
	"time"

	"github.com/google/uuid"
)

// EventAction is the closed set of notification tags. Unknown values are
// rejected at the boundary, never stored.
type EventAction string

const (
	EventCommentApproved    EventAction = "COMMENT_APPROVED"
	EventCommentRejected    EventAction = "COMMENT_REJECTED"
	EventBookApproved       EventAction = "BOOK_APPROVED"
	EventBookRejected       EventAction = "BOOK_REJECTED"
	EventOrderStatusUpdated EventAction = "ORDER_STATUS_UPDATED"
)

// Event is an immutable, user-addressed notification. Rows are appended by
// the moderation and order workflows and never updated or deleted.
type Event struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Action      EventAction `gorm:"size:50;not null" json:"action"`
	Description string      `gorm:"size:500;not null" json:"description"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
}
