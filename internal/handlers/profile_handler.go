package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pagewise/bookstore-backend/internal/dto"
	"github.com/pagewise/bookstore-backend/internal/models"
	"github.com/pagewise/bookstore-backend/internal/principal"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// Status reports the caller's role flags.
func (h *ProfileHandler) Status(c *fiber.Ctx) error {
	p := principal.Resolve(c, h.db)
	if !p.Authenticated {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	return c.JSON(dto.UserStatusResponse{
		IsAdmin:     p.Admin,
		IsModerator: p.Moderator,
	})
}

// Profile returns the caller's identity, roles and contact fields. A missing
// profile row yields zero-valued contact fields, not an error.
func (h *ProfileHandler) Profile(c *fiber.Ctx) error {
	p := principal.Resolve(c, h.db)
	if !p.Authenticated {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var user models.User
	if err := h.db.Preload("Profile").First(&user, "id = ?", p.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	resp := dto.ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if user.Profile != nil {
		resp.IsAdmin = user.Profile.IsAdmin
		resp.IsModerator = user.Profile.IsModerator
		resp.Address = user.Profile.Address
		resp.City = user.Profile.City
		resp.PostalCode = user.Profile.PostalCode
		resp.PhoneNumber = user.Profile.PhoneNumber
	}
	return c.JSON(resp)
}
