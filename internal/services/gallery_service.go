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
	ErrImageNotFound  = errors.New("image not found")
	ErrSliderNotFound = errors.New("slider not found")
)

// GalleryService manages storefront gallery images and sliders. Image files
// themselves live in external storage; only URLs are tracked here.
type GalleryService struct {
	db *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{db: db}
}

func (s *GalleryService) ListImages() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := s.db.Order("slider_order ASC, created_at ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (s *GalleryService) AddImage(req *dto.AddImageRequest) (*models.GalleryImage, error) {
	if strings.TrimSpace(req.ImageURL) == "" {
		return nil, errors.New("image_url is required")
	}

	image := models.GalleryImage{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// UpdateSliderOrder applies a batch of ordering updates atomically. Any
// unknown image id aborts the whole batch.
func (s *GalleryService) UpdateSliderOrder(updates []dto.SliderOrderUpdate) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&models.GalleryImage{}).
				Where("id = ?", u.ID).
				Update("slider_order", u.SliderOrder)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrImageNotFound
			}
		}
		return nil
	})
}

func (s *GalleryService) ListSliders() ([]models.Slider, error) {
	var sliders []models.Slider
	if err := s.db.Preload("Images").Find(&sliders).Error; err != nil {
		return nil, err
	}
	return sliders, nil
}

func (s *GalleryService) GetSlider(id uuid.UUID) (*models.Slider, error) {
	var slider models.Slider
	if err := s.db.Preload("Images").First(&slider, "id = ?", id).Error; err != nil {
		return nil, ErrSliderNotFound
	}
	return &slider, nil
}

func (s *GalleryService) CreateSlider(req *dto.CreateSliderRequest) (*models.Slider, error) {
	slider := models.Slider{ID: uuid.New(), Name: req.Name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&slider).Error; err != nil {
			return err
		}
		if len(req.ImageIDs) == 0 {
			return nil
		}
		var images []models.GalleryImage
		if err := tx.Find(&images, "id IN ?", req.ImageIDs).Error; err != nil {
			return err
		}
		if len(images) != len(req.ImageIDs) {
			return ErrImageNotFound
		}
		return tx.Model(&slider).Association("Images").Append(&images)
	})
	if err != nil {
		return nil, err
	}
	return s.GetSlider(slider.ID)
}

func (s *GalleryService) UpdateSlider(id uuid.UUID, req *dto.UpdateSliderRequest) (*models.Slider, error) {
	slider, err := s.GetSlider(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if err := s.db.Model(slider).Update("name", *req.Name).Error; err != nil {
			return nil, err
		}
	}
	return s.GetSlider(id)
}

func (s *GalleryService) DeleteSlider(id uuid.UUID) error {
	slider, err := s.GetSlider(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(slider).Association("Images").Clear(); err != nil {
			return err
		}
		return tx.Delete(slider).Error
	})
}

func (s *GalleryService) AddImageToSlider(sliderID, imageID uuid.UUID) error {
	slider, err := s.GetSlider(sliderID)
	if err != nil {
		return err
	}
	var image models.GalleryImage
	if err := s.db.First(&image, "id = ?", imageID).Error; err != nil {
		return ErrImageNotFound
	}
	return s.db.Model(slider).Association("Images").Append(&image)
}

func (s *GalleryService) RemoveImageFromSlider(sliderID, imageID uuid.UUID) error {
	slider, err := s.GetSlider(sliderID)
	if err != nil {
		return err
	}
	var image models.GalleryImage
	if err := s.db.First(&image, "id = ?", imageID).Error; err != nil {
		return ErrImageNotFound
	}
	return s.db.Model(slider).Association("Images").Delete(&image)
}

// SetDefaultSlider flags one slider as the storefront default.
func (s *GalleryService) SetDefaultSlider(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Slider{}).Where("id = ?", id).Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSliderNotFound
		}
		return tx.Model(&models.Slider{}).Where("id <> ?", id).
			Update("is_default", false).Error
	})
}
