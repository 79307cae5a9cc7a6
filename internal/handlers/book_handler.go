package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/dto"
	"github.com/pagewise/bookstore-backend/internal/principal"
	"github.com/pagewise/bookstore-backend/internal/services"
	"gorm.io/gorm"
)

type BookHandler struct {
	db         *gorm.DB
	catalog    *services.CatalogService
	moderation *services.ModerationService
}

func NewBookHandler(db *gorm.DB, catalog *services.CatalogService, moderation *services.ModerationService) *BookHandler {
	return &BookHandler{db: db, catalog: catalog, moderation: moderation}
}

func (h *BookHandler) List(c *fiber.Ctx) error {
	p := principal.Resolve(c, h.db)

	var categoryID *uuid.UUID
	if raw := c.Query("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid category ID",
			})
		}
		categoryID = &id
	}

	books, err := h.catalog.ListBooks(p, categoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch books",
		})
	}
	return c.JSON(books)
}

func (h *BookHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid book ID",
		})
	}

	p := principal.Resolve(c, h.db)
	book, err := h.catalog.GetBook(p, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Book not found",
		})
	}
	return c.JSON(book)
}

func (h *BookHandler) Create(c *fiber.Ctx) error {
	p := principal.Resolve(c, h.db)
	if !p.Authenticated {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	book, err := h.catalog.CreateBook(p, &req)
	if err != nil {
		// An unknown category is a bad submission, not a missing resource.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(book)
}

func (h *BookHandler) Approve(c *fiber.Ctx) error {
	return h.moderate(c, true)
}

func (h *BookHandler) Reject(c *fiber.Ctx) error {
	return h.moderate(c, false)
}

func (h *BookHandler) moderate(c *fiber.Ctx, approve bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid book ID",
		})
	}

	p := principal.Resolve(c, h.db)
	book, err := h.moderation.ModerateBook(p, id, approve)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden",
			})
		case errors.Is(err, services.ErrBookNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Book not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update book",
			})
		}
	}
	return c.JSON(book)
}
