package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/dto"
	"github.com/pagewise/bookstore-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrThemeNotFound   = errors.New("theme not found")
	ErrNoThemeSelected = errors.New("no theme selected")
)

// ThemeService manages storefront color themes and per-user selections.
type ThemeService struct {
	db *gorm.DB
}

func NewThemeService(db *gorm.DB) *ThemeService {
	return &ThemeService{db: db}
}

// Default returns the storefront default theme, falling back to the oldest
// theme when none is flagged.
func (s *ThemeService) Default() (*models.Theme, error) {
	var theme models.Theme
	if err := s.db.Where("is_default = ?", true).First(&theme).Error; err == nil {
		return &theme, nil
	}
	if err := s.db.Order("created_at ASC").First(&theme).Error; err != nil {
		return nil, ErrThemeNotFound
	}
	return &theme, nil
}

func (s *ThemeService) List() ([]models.Theme, error) {
	var themes []models.Theme
	if err := s.db.Order("created_at ASC").Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

func (s *ThemeService) Create(req *dto.CreateThemeRequest) (*models.Theme, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("theme name is required")
	}

	theme := models.Theme{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		AccentColor:    req.AccentColor,
		IsDefault:      req.IsDefault,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if theme.IsDefault {
			if err := tx.Model(&models.Theme{}).Where("is_default = ?", true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&theme).Error
	})
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// Select stores the user's theme choice, creating the profile row if the
// user has none yet.
func (s *ThemeService) Select(userID uuid.UUID, themeID uuid.UUID) (*models.Theme, error) {
	var theme models.Theme
	if err := s.db.First(&theme, "id = ?", themeID).Error; err != nil {
		return nil, ErrThemeNotFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Upsert keyed on the user_id unique index so two concurrent first
		// selections cannot race a find-then-create.
		profile := models.UserProfile{UserID: userID}
		if err := tx.Where("user_id = ?", userID).
			Attrs(models.UserProfile{ID: uuid.New()}).
			FirstOrCreate(&profile).Error; err != nil {
			return err
		}
		return tx.Model(&profile).Update("selected_theme_id", theme.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// Selected returns the user's chosen theme.
func (s *ThemeService) Selected(userID uuid.UUID) (*models.Theme, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, ErrNoThemeSelected
	}
	if profile.SelectedThemeID == nil {
		return nil, ErrNoThemeSelected
	}

	var theme models.Theme
	if err := s.db.First(&theme, "id = ?", *profile.SelectedThemeID).Error; err != nil {
		return nil, ErrThemeNotFound
	}
	return &theme, nil
}
