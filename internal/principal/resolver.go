package principal

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/models"
	"gorm.io/gorm"
)

func claimsFromContext(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("no token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// UserIDFromContext extracts the user UUID from JWT claims placed in context
// by the auth middleware.
func UserIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// UserFromClaims maps token claims onto a local user row. The identity
// provider owns the account; this service only mirrors the subject. The
// username falls back to the subject id when the token carries none, so the
// row always satisfies the unique not-null constraint.
func UserFromClaims(userID uuid.UUID, claims jwt.MapClaims) models.User {
	user := models.User{ID: userID}

	if v, ok := claims["username"].(string); ok && v != "" {
		user.Username = v
	} else if v, ok := claims["preferred_username"].(string); ok && v != "" {
		user.Username = v
	} else {
		user.Username = userID.String()
	}
	if v, ok := claims["email"].(string); ok {
		user.Email = v
	}
	return user
}

// Resolve turns the request's bearer token (if any) into a Principal. A
// request without a valid token resolves to Guest; a user without a profile
// row resolves to a non-privileged authenticated user.
func Resolve(c *fiber.Ctx, db *gorm.DB) Principal {
	claims, err := claimsFromContext(c)
	if err != nil {
		return Guest()
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return Guest()
	}

	// Mirror the subject into users on first sight so owner_id and user_id
	// foreign keys resolve on the subject's first write.
	user := UserFromClaims(userID, claims)
	if err := db.Where("id = ?", userID).FirstOrCreate(&user).Error; err != nil {
		slog.Error("user provisioning failed", "user_id", userID.String(), "error", err)
	}

	var profile models.UserProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return FromProfile(userID, nil, nil)
	}

	var moderated []uuid.UUID
	if profile.IsModerator {
		db.Table("category_moderators").
			Where("user_id = ?", userID).
			Pluck("category_id", &moderated)
	}

	return FromProfile(userID, &profile, moderated)
}
