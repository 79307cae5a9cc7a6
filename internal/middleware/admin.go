package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pagewise/bookstore-backend/internal/config"
	"github.com/pagewise/bookstore-backend/internal/dto"
	"github.com/pagewise/bookstore-backend/internal/principal"
	"gorm.io/gorm"
)

// AdminRequired gates admin-only surfaces. It accepts either the operator
// token header or an authenticated principal whose profile carries the
// admin flag.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		p := principal.Resolve(c, db)
		if !p.Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if !p.Admin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
