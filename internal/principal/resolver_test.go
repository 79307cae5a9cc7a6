package principal

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserFromClaimsPrefersUsernameClaim(t *testing.T) {
	id := uuid.New()
	user := UserFromClaims(id, jwt.MapClaims{
		"username":           "reader42",
		"preferred_username": "ignored",
		"email":              "reader42@example.com",
	})

	assert.Equal(t, id, user.ID)
	assert.Equal(t, "reader42", user.Username)
	assert.Equal(t, "reader42@example.com", user.Email)
}

func TestUserFromClaimsFallsBackToPreferredUsername(t *testing.T) {
	id := uuid.New()
	user := UserFromClaims(id, jwt.MapClaims{
		"preferred_username": "reader42",
	})

	assert.Equal(t, "reader42", user.Username)
}

func TestUserFromClaimsUnknownSubjectStillInsertable(t *testing.T) {
	// A token carrying nothing but a subject must still map to a row that
	// satisfies the unique not-null username constraint.
	id := uuid.New()
	user := UserFromClaims(id, jwt.MapClaims{"sub": id.String()})

	assert.Equal(t, id, user.ID)
	assert.Equal(t, id.String(), user.Username)
	assert.Empty(t, user.Email)
}

func TestUserFromClaimsIgnoresNonStringClaims(t *testing.T) {
	id := uuid.New()
	user := UserFromClaims(id, jwt.MapClaims{
		"username": 42,
		"email":    true,
	})

	assert.Equal(t, id.String(), user.Username)
	assert.Empty(t, user.Email)
}
