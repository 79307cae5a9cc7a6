package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/dto"
	"github.com/pagewise/bookstore-backend/internal/services"
)

type GalleryHandler struct {
	gallery *services.GalleryService
}

func NewGalleryHandler(gallery *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

func (h *GalleryHandler) ListImages(c *fiber.Ctx) error {
	images, err := h.gallery.ListImages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch images",
		})
	}
	return c.JSON(images)
}

func (h *GalleryHandler) AddImage(c *fiber.Ctx) error {
	var req dto.AddImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	image, err := h.gallery.AddImage(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

func (h *GalleryHandler) UpdateSliderOrder(c *fiber.Ctx) error {
	var updates []dto.SliderOrderUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.gallery.UpdateSliderOrder(updates); err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Image not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update slider order",
		})
	}
	return c.JSON(fiber.Map{"status": "Slider order updated"})
}

func (h *GalleryHandler) ListSliders(c *fiber.Ctx) error {
	sliders, err := h.gallery.ListSliders()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch sliders",
		})
	}
	return c.JSON(sliders)
}

func (h *GalleryHandler) GetSlider(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid slider ID",
		})
	}

	slider, err := h.gallery.GetSlider(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Slider not found",
		})
	}
	return c.JSON(slider)
}

func (h *GalleryHandler) CreateSlider(c *fiber.Ctx) error {
	var req dto.CreateSliderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	slider, err := h.gallery.CreateSlider(&req)
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Image not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(slider)
}

func (h *GalleryHandler) UpdateSlider(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid slider ID",
		})
	}

	var req dto.UpdateSliderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	slider, err := h.gallery.UpdateSlider(id, &req)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Slider not found",
		})
	}
	return c.JSON(slider)
}

func (h *GalleryHandler) DeleteSlider(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid slider ID",
		})
	}

	if err := h.gallery.DeleteSlider(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Slider not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *GalleryHandler) AddImageToSlider(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid slider ID",
		})
	}

	var req dto.SliderImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.gallery.AddImageToSlider(id, req.ImageID); err != nil {
		switch {
		case errors.Is(err, services.ErrSliderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Slider not found",
			})
		case errors.Is(err, services.ErrImageNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Image not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to add image to slider",
			})
		}
	}
	return c.JSON(fiber.Map{"message": "Image added to slider"})
}

func (h *GalleryHandler) RemoveImageFromSlider(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid slider ID",
		})
	}

	var req dto.SliderImageRequest
	if err := c.BodyParser(&req); err != nil || req.ImageID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image ID is required",
		})
	}

	if err := h.gallery.RemoveImageFromSlider(id, req.ImageID); err != nil {
		if errors.Is(err, services.ErrSliderNotFound) || errors.Is(err, services.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove image from slider",
		})
	}
	return c.JSON(fiber.Map{"message": "Image removed from slider"})
}

func (h *GalleryHandler) SetDefaultSlider(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid slider ID",
		})
	}

	if err := h.gallery.SetDefaultSlider(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Slider not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Default slider updated"})
}
