package services

import (
	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/models"
	"gorm.io/gorm"
)

// EventService is the append-only notification sink. Records are written
// inside the caller's transaction so a notification never exists without
// the state change that produced it.
type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// Record appends one event for the given user. tx may be a transaction
// handle or the root connection.
func (s *EventService) Record(tx *gorm.DB, userID uuid.UUID, action models.EventAction, description string) error {
	event := models.Event{
		ID:          uuid.New(),
		UserID:      userID,
		Action:      action,
		Description: description,
	}
	return tx.Create(&event).Error
}

// ListForUser returns the user's notifications, newest first.
func (s *EventService) ListForUser(userID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
