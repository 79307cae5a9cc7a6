package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/dto"
	"github.com/pagewise/bookstore-backend/internal/models"
	"github.com/pagewise/bookstore-backend/internal/principal"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyComment    = errors.New("comment content is required")
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// CanViewAllComments reports whether the principal sees a book's comment
// thread unfiltered: admins always, moderators when the book sits in one of
// their categories.
func CanViewAllComments(p principal.Principal, book *models.Book) bool {
	if p.Admin {
		return true
	}
	return p.Moderates(book.CategoryID)
}

// ListForBook applies the comment visibility rules: approved comments for
// everyone, the caller's own comments regardless of state, and the full
// thread for admins and the book's category moderators.
func (s *CommentService) ListForBook(p principal.Principal, bookID uuid.UUID) ([]models.Comment, error) {
	var book models.Book
	if err := s.db.First(&book, "id = ?", bookID).Error; err != nil {
		return nil, ErrBookNotFound
	}

	q := s.db.Model(&models.Comment{}).
		Preload("User").
		Where("book_id = ?", bookID).
		Order("created_at DESC")

	if !CanViewAllComments(p, &book) {
		if p.Authenticated {
			q = q.Where("approval = ? OR user_id = ?", models.ApprovalApproved, p.UserID)
		} else {
			q = q.Where("approval = ?", models.ApprovalApproved)
		}
	}

	var comments []models.Comment
	if err := q.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Create stores a new comment in the pending state.
func (s *CommentService) Create(p principal.Principal, bookID uuid.UUID, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyComment
	}

	var book models.Book
	if err := s.db.First(&book, "id = ?", bookID).Error; err != nil {
		return nil, ErrBookNotFound
	}

	comment := models.Comment{
		ID:       uuid.New(),
		BookID:   book.ID,
		UserID:   p.UserID,
		Content:  strings.TrimSpace(req.Content),
		Approval: models.ApprovalPending,
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}
