package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pagewise/bookstore-backend/internal/dto"
	"github.com/pagewise/bookstore-backend/internal/principal"
	"github.com/pagewise/bookstore-backend/internal/services"
	"gorm.io/gorm"
)

type ThemeHandler struct {
	db     *gorm.DB
	themes *services.ThemeService
}

func NewThemeHandler(db *gorm.DB, themes *services.ThemeService) *ThemeHandler {
	return &ThemeHandler{db: db, themes: themes}
}

func (h *ThemeHandler) Default(c *fiber.Ctx) error {
	theme, err := h.themes.Default()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No themes available",
		})
	}
	return c.JSON(theme)
}

func (h *ThemeHandler) List(c *fiber.Ctx) error {
	themes, err := h.themes.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch themes",
		})
	}
	return c.JSON(themes)
}

func (h *ThemeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	theme, err := h.themes.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(theme)
}

func (h *ThemeHandler) Select(c *fiber.Ctx) error {
	// Resolve rather than just reading the subject claim: it provisions the
	// user row the profile upsert references.
	p := principal.Resolve(c, h.db)
	if !p.Authenticated {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SelectThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	theme, err := h.themes.Select(p.UserID, req.ThemeID)
	if err != nil {
		if errors.Is(err, services.ErrThemeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Theme not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to select theme",
		})
	}
	return c.JSON(theme)
}

func (h *ThemeHandler) Selected(c *fiber.Ctx) error {
	userID, err := principal.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	theme, err := h.themes.Selected(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No theme selected",
		})
	}
	return c.JSON(theme)
}
