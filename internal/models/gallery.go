package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage references an externally stored image. File upload and
// hosting live outside this service; only the URL is kept.
type GalleryImage struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:200" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:500;not null" json:"image_url"`
	SliderOrder int       `gorm:"not null;default:0" json:"slider_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// Slider is an ordered set of gallery images shown on the storefront.
type Slider struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`

	Images []GalleryImage `gorm:"many2many:slider_images" json:"images"`
}
