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
	ErrBookNotFound     = errors.New("book not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidBook      = errors.New("title and a non-negative price are required")
)

// CatalogService serves the book catalog and categories. All reads go
// through the visibility rules: the public sees approved books only, owners
// additionally see their own submissions, and privileged reviewers see
// unmoderated content in their scope.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// VisibleBooks is the listing filter for a principal. Admins replace the set
// with everything in scope; moderators see unmoderated books only in the
// categories they moderate (approved books everywhere else); everyone else
// gets approved books plus their own.
func VisibleBooks(p principal.Principal) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Admin {
			return db
		}
		if p.Moderator && len(p.ModeratedCategories) > 0 {
			return db.Where("approval = ? OR owner_id = ? OR category_id IN ?",
				models.ApprovalApproved, p.UserID, p.ModeratedIDs())
		}
		if p.Authenticated {
			return db.Where("approval = ? OR owner_id = ?", models.ApprovalApproved, p.UserID)
		}
		return db.Where("approval = ?", models.ApprovalApproved)
	}
}

// CanViewBook is the single-item counterpart of VisibleBooks.
func CanViewBook(p principal.Principal, b *models.Book) bool {
	if b.Approval == models.ApprovalApproved {
		return true
	}
	if p.Admin {
		return true
	}
	if p.Authenticated && b.OwnerID == p.UserID {
		return true
	}
	return p.Moderates(b.CategoryID)
}

func (s *CatalogService) ListBooks(p principal.Principal, categoryID *uuid.UUID) ([]models.Book, error) {
	q := s.db.Model(&models.Book{}).
		Preload("Category").
		Scopes(VisibleBooks(p)).
		Order("created_at DESC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}

	var books []models.Book
	if err := q.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook hides unapproved books from callers outside the visibility rules
// behind the same not-found error as a missing row.
func (s *CatalogService) GetBook(p principal.Principal, id uuid.UUID) (*models.Book, error) {
	var book models.Book
	if err := s.db.Preload("Category").First(&book, "id = ?", id).Error; err != nil {
		return nil, ErrBookNotFound
	}
	if !CanViewBook(p, &book) {
		return nil, ErrBookNotFound
	}
	return &book, nil
}

// CreateBook stores a new submission in the pending state.
func (s *CatalogService) CreateBook(p principal.Principal, req *dto.CreateBookRequest) (*models.Book, error) {
	if strings.TrimSpace(req.Title) == "" || req.Price.IsNegative() {
		return nil, ErrInvalidBook
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			return nil, ErrCategoryNotFound
		}
	}

	book := models.Book{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		OwnerID:     p.UserID,
		Approval:    models.ApprovalPending,
	}

	if err := s.db.Create(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category and registers its moderators. Every
// referenced user must exist; the association alone does not grant
// privileges — the user's profile must also carry the moderator flag.
func (s *CatalogService) CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("category name is required")
	}

	category := models.Category{ID: uuid.New(), Name: name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&category).Error; err != nil {
			return err
		}
		if len(req.ModeratorIDs) == 0 {
			return nil
		}
		var moderators []models.User
		if err := tx.Find(&moderators, "id IN ?", req.ModeratorIDs).Error; err != nil {
			return err
		}
		if len(moderators) != len(req.ModeratorIDs) {
			return errors.New("unknown moderator user id")
		}
		return tx.Model(&category).Association("Moderators").Append(&moderators)
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}
