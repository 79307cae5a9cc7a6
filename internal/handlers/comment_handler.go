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

type CommentHandler struct {
	db         *gorm.DB
	comments   *services.CommentService
	moderation *services.ModerationService
}

func NewCommentHandler(db *gorm.DB, comments *services.CommentService, moderation *services.ModerationService) *CommentHandler {
	return &CommentHandler{db: db, comments: comments, moderation: moderation}
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	bookID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid book ID",
		})
	}

	p := principal.Resolve(c, h.db)
	comments, err := h.comments.ListForBook(p, bookID)
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Book not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch comments",
		})
	}
	return c.JSON(comments)
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	bookID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid book ID",
		})
	}

	p := principal.Resolve(c, h.db)
	if !p.Authenticated {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	comment, err := h.comments.Create(p, bookID, &req)
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Book not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) Approve(c *fiber.Ctx) error {
	return h.moderate(c, true)
}

func (h *CommentHandler) Reject(c *fiber.Ctx) error {
	return h.moderate(c, false)
}

func (h *CommentHandler) moderate(c *fiber.Ctx, approve bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid comment ID",
		})
	}

	p := principal.Resolve(c, h.db)
	comment, err := h.moderation.ModerateComment(p, id, approve)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden",
			})
		case errors.Is(err, services.ErrCommentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Comment not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update comment",
			})
		}
	}
	return c.JSON(comment)
}
