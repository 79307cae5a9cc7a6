package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/models"
	"github.com/pagewise/bookstore-backend/internal/principal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ModerationService owns the approval state machine for books and comments.
// Transitions are re-entrant: a reviewer may flip approved and rejected
// back and forth; there is no terminal state. Each successful transition
// appends exactly one event to the content owner, atomically with the
// approval write.
type ModerationService struct {
	db     *gorm.DB
	events *EventService
}

func NewModerationService(db *gorm.DB, events *EventService) *ModerationService {
	return &ModerationService{db: db, events: events}
}

func decisionState(approve bool) models.Approval {
	if approve {
		return models.ApprovalApproved
	}
	return models.ApprovalRejected
}

func bookEventAction(approve bool) models.EventAction {
	if approve {
		return models.EventBookApproved
	}
	return models.EventBookRejected
}

func commentEventAction(approve bool) models.EventAction {
	if approve {
		return models.EventCommentApproved
	}
	return models.EventCommentRejected
}

func bookEventDescription(title string, approve bool) string {
	if approve {
		return fmt.Sprintf("Your book '%s' has been approved.", title)
	}
	return fmt.Sprintf("Your book '%s' has been rejected.", title)
}

func commentEventDescription(bookTitle string, approve bool) string {
	if approve {
		return fmt.Sprintf("Your comment on '%s' has been approved.", bookTitle)
	}
	return fmt.Sprintf("Your comment on '%s' has been rejected.", bookTitle)
}

// ModerateBook approves or rejects a book. The caller must be an admin or a
// registered moderator of the book's category; uncategorized books are
// admin-only. Authorization failure leaves the book untouched and records
// no event.
func (s *ModerationService) ModerateBook(p principal.Principal, bookID uuid.UUID, approve bool) (*models.Book, error) {
	var book models.Book

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Row lock so two concurrent decisions cannot both commit and
		// produce two events for one logical transition.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, "id = ?", bookID).Error; err != nil {
			return ErrBookNotFound
		}

		if !p.CanModerate(book.CategoryID) {
			return ErrForbidden
		}

		book.Approval = decisionState(approve)
		if err := tx.Model(&book).Update("approval", book.Approval).Error; err != nil {
			return err
		}

		return s.events.Record(tx, book.OwnerID,
			bookEventAction(approve),
			bookEventDescription(book.Title, approve))
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ModerateComment approves or rejects a comment; authorization follows the
// category of the comment's book.
func (s *ModerationService) ModerateComment(p principal.Principal, commentID uuid.UUID, approve bool) (*models.Comment, error) {
	var comment models.Comment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Book").
			First(&comment, "id = ?", commentID).Error; err != nil {
			return ErrCommentNotFound
		}

		if !p.CanModerate(comment.Book.CategoryID) {
			return ErrForbidden
		}

		comment.Approval = decisionState(approve)
		if err := tx.Model(&comment).Update("approval", comment.Approval).Error; err != nil {
			return err
		}

		return s.events.Record(tx, comment.UserID,
			commentEventAction(approve),
			commentEventDescription(comment.Book.Title, approve))
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
