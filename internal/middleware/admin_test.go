package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pagewise/bookstore-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAdminApp mounts a route behind the same middleware stack the admin
// routes use. The db is nil: a request without a parsed token resolves to a
// guest before any query runs.
func newAdminApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Post("/admin/ping", JWTOptional(cfg), AdminRequired(nil, cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAdminOperatorTokenReachesHandler(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", AdminToken: "ops-token"}
	app := newAdminApp(cfg)

	req := httptest.NewRequest(http.MethodPost, "/admin/ping", nil)
	req.Header.Set("X-Admin-Token", "ops-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminRejectsMissingCredentials(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", AdminToken: "ops-token"}
	app := newAdminApp(cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/admin/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRejectsWrongOperatorToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", AdminToken: "ops-token"}
	app := newAdminApp(cfg)

	req := httptest.NewRequest(http.MethodPost, "/admin/ping", nil)
	req.Header.Set("X-Admin-Token", "wrong")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminIgnoresHeaderWhenNoTokenConfigured(t *testing.T) {
	// With no operator token configured the header must never match,
	// not even an empty one.
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := newAdminApp(cfg)

	req := httptest.NewRequest(http.MethodPost, "/admin/ping", nil)
	req.Header.Set("X-Admin-Token", "")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
