package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/pagewise/bookstore-backend/internal/config"
	"github.com/pagewise/bookstore-backend/internal/handlers"
	"github.com/pagewise/bookstore-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	bookHandler *handlers.BookHandler,
	commentHandler *handlers.CommentHandler,
	orderHandler *handlers.OrderHandler,
	eventHandler *handlers.EventHandler,
	profileHandler *handlers.ProfileHandler,
	categoryHandler *handlers.CategoryHandler,
	themeHandler *handlers.ThemeHandler,
	galleryHandler *handlers.GalleryHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	jwtRequired := middleware.JWTProtected(cfg)
	jwtOptional := middleware.JWTOptional(cfg)
	adminOnly := middleware.AdminRequired(db, cfg)

	api.Get("/health", healthHandler.Check)

	// Catalog — public reads widen for authenticated callers, so the
	// optional variant parses a token when one is present.
	api.Get("/books", jwtOptional, bookHandler.List)
	api.Get("/books/:id", jwtOptional, bookHandler.Get)
	api.Post("/books/create", jwtRequired, bookHandler.Create)
	api.Patch("/books/:id/approve", jwtRequired, bookHandler.Approve)
	api.Patch("/books/:id/reject", jwtRequired, bookHandler.Reject)

	// Comments
	api.Get("/books/:id/comments", jwtOptional, commentHandler.List)
	api.Post("/books/:id/comments", jwtRequired, commentHandler.Create)
	api.Post("/comments/:id/approve", jwtRequired, commentHandler.Approve)
	api.Post("/comments/:id/reject", jwtRequired, commentHandler.Reject)

	// Orders
	api.Post("/order", jwtRequired, orderHandler.Create)
	api.Get("/orders", jwtRequired, orderHandler.List)
	api.Get("/orders/:id", jwtRequired, orderHandler.Get)
	api.Post("/orders/:id/update-status", jwtRequired, orderHandler.UpdateStatus)

	// Notifications
	api.Get("/events", jwtRequired, eventHandler.List)

	// Profile
	api.Get("/user_status", jwtRequired, profileHandler.Status)
	api.Get("/profile", jwtRequired, profileHandler.Profile)

	// Categories
	api.Get("/categories", categoryHandler.List)

	// Themes
	api.Get("/theme/default", themeHandler.Default)
	api.Get("/themes", themeHandler.List)
	api.Get("/themes/select", jwtRequired, themeHandler.Selected)
	api.Post("/themes/select", jwtRequired, themeHandler.Select)

	// Gallery & sliders — public reads
	api.Get("/images", galleryHandler.ListImages)
	api.Get("/sliders", galleryHandler.ListSliders)
	api.Get("/sliders/:id", galleryHandler.GetSlider)

	// Admin-only storefront management - middleware applied per route so
	// the public GETs above stay public. The JWT layer is optional here:
	// admins authenticate with a bearer token, operators may instead send
	// X-Admin-Token, which AdminRequired checks before resolving a user.
	api.Post("/admin/categories", jwtOptional, adminOnly, categoryHandler.Create)
	api.Post("/admin/themes", jwtOptional, adminOnly, themeHandler.Create)
	api.Post("/images", jwtOptional, adminOnly, galleryHandler.AddImage)
	api.Patch("/update-slider-order", jwtOptional, adminOnly, galleryHandler.UpdateSliderOrder)
	api.Post("/sliders", jwtOptional, adminOnly, galleryHandler.CreateSlider)
	api.Patch("/sliders/:id", jwtOptional, adminOnly, galleryHandler.UpdateSlider)
	api.Delete("/sliders/:id", jwtOptional, adminOnly, galleryHandler.DeleteSlider)
	api.Post("/sliders/:id/add_image", jwtOptional, adminOnly, galleryHandler.AddImageToSlider)
	api.Post("/sliders/:id/remove_image", jwtOptional, adminOnly, galleryHandler.RemoveImageFromSlider)
	api.Post("/sliders/:id/set_default", jwtOptional, adminOnly, galleryHandler.SetDefaultSlider)
}
