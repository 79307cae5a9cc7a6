package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pagewise/bookstore-backend/internal/dto"
	"github.com/pagewise/bookstore-backend/internal/principal"
	"github.com/pagewise/bookstore-backend/internal/services"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List returns the caller's notifications, newest first.
func (h *EventHandler) List(c *fiber.Ctx) error {
	userID, err := principal.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	events, err := h.events.ListForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch events",
		})
	}
	return c.JSON(events)
}
