package dto

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name         string      `json:"name"`
	ModeratorIDs []uuid.UUID `json:"moderators"`
}

type CreateThemeRequest struct {
	Name           string `json:"name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
	IsDefault      bool   `json:"is_default"`
}

type SelectThemeRequest struct {
	ThemeID uuid.UUID `json:"theme_id"`
}

type AddImageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type SliderOrderUpdate struct {
	ID          uuid.UUID `json:"id"`
	SliderOrder int       `json:"slider_order"`
}

type CreateSliderRequest struct {
	Name     string      `json:"name"`
	ImageIDs []uuid.UUID `json:"image_ids"`
}

type UpdateSliderRequest struct {
	Name *string `json:"name"`
}

type SliderImageRequest struct {
	ImageID uuid.UUID `json:"image_id"`
}

type UserStatusResponse struct {
	IsAdmin     bool `json:"is_admin"`
	IsModerator bool `json:"is_moderator"`
}

type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsAdmin     bool      `json:"is_admin"`
	IsModerator bool      `json:"is_moderator"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	PhoneNumber string    `json:"phone_number"`
}
