package principal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestHasNoCapabilities(t *testing.T) {
	g := Guest()

	assert.False(t, g.Authenticated)
	assert.False(t, g.Privileged())
	catID := uuid.New()
	assert.False(t, g.CanModerate(&catID))
	assert.False(t, g.CanModerate(nil))
}

func TestFromProfileNilProfileIsSafeDefault(t *testing.T) {
	userID := uuid.New()
	p := FromProfile(userID, nil, nil)

	require.True(t, p.Authenticated)
	assert.Equal(t, userID, p.UserID)
	assert.False(t, p.Admin)
	assert.False(t, p.Moderator)
	assert.False(t, p.Privileged())
}

func TestFromProfileRoleFlagsAreIndependent(t *testing.T) {
	userID := uuid.New()

	both := FromProfile(userID, &models.UserProfile{IsAdmin: true, IsModerator: true}, nil)
	assert.True(t, both.Admin)
	assert.True(t, both.Moderator)

	neither := FromProfile(userID, &models.UserProfile{}, nil)
	assert.False(t, neither.Privileged())
}

func TestAdminModeratesAnyCategory(t *testing.T) {
	p := FromProfile(uuid.New(), &models.UserProfile{IsAdmin: true}, nil)

	catID := uuid.New()
	assert.True(t, p.CanModerate(&catID))
	// Uncategorized content is admin-only, and admins qualify.
	assert.True(t, p.CanModerate(nil))
}

func TestModeratorScopedToRegisteredCategories(t *testing.T) {
	mine := uuid.New()
	other := uuid.New()
	p := FromProfile(uuid.New(), &models.UserProfile{IsModerator: true}, []uuid.UUID{mine})

	assert.True(t, p.CanModerate(&mine))
	assert.False(t, p.CanModerate(&other))
}

func TestModeratorCannotModerateUncategorized(t *testing.T) {
	p := FromProfile(uuid.New(), &models.UserProfile{IsModerator: true}, []uuid.UUID{uuid.New()})

	assert.False(t, p.CanModerate(nil))
	assert.False(t, p.Moderates(nil))
}

func TestModeratorFlagWithoutRegistrationGrantsNothing(t *testing.T) {
	p := FromProfile(uuid.New(), &models.UserProfile{IsModerator: true}, nil)

	catID := uuid.New()
	assert.True(t, p.Privileged())
	assert.False(t, p.CanModerate(&catID))
}

func TestRegistrationWithoutModeratorFlagGrantsNothing(t *testing.T) {
	catID := uuid.New()
	p := FromProfile(uuid.New(), &models.UserProfile{}, []uuid.UUID{catID})

	assert.False(t, p.Moderates(&catID))
	assert.False(t, p.CanModerate(&catID))
}

func TestModeratedIDsRoundTrip(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	p := FromProfile(uuid.New(), &models.UserProfile{IsModerator: true}, []uuid.UUID{a, b})

	ids := p.ModeratedIDs()
	assert.ElementsMatch(t, []uuid.UUID{a, b}, ids)
}
