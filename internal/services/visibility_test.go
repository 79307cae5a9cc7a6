package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/models"
	"github.com/pagewise/bookstore-backend/internal/principal"
	"github.com/stretchr/testify/assert"
)

func pendingBook(owner uuid.UUID, category *uuid.UUID) *models.Book {
	return &models.Book{
		ID:         uuid.New(),
		Title:      "Dune",
		OwnerID:    owner,
		CategoryID: category,
		Approval:   models.ApprovalPending,
	}
}

func TestGuestSeesOnlyApprovedBooks(t *testing.T) {
	guest := principal.Guest()
	owner := uuid.New()
	catID := uuid.New()

	approved := pendingBook(owner, &catID)
	approved.Approval = models.ApprovalApproved
	assert.True(t, CanViewBook(guest, approved))

	assert.False(t, CanViewBook(guest, pendingBook(owner, &catID)))

	rejected := pendingBook(owner, &catID)
	rejected.Approval = models.ApprovalRejected
	assert.False(t, CanViewBook(guest, rejected))
}

func TestOwnerSeesOwnBookRegardlessOfState(t *testing.T) {
	owner := uuid.New()
	p := principal.FromProfile(owner, nil, nil)
	catID := uuid.New()

	assert.True(t, CanViewBook(p, pendingBook(owner, &catID)))

	rejected := pendingBook(owner, &catID)
	rejected.Approval = models.ApprovalRejected
	assert.True(t, CanViewBook(p, rejected))
}

func TestAuthenticatedNonOwnerCannotSeePending(t *testing.T) {
	p := principal.FromProfile(uuid.New(), nil, nil)
	catID := uuid.New()

	assert.False(t, CanViewBook(p, pendingBook(uuid.New(), &catID)))
}

func TestAdminSeesEverything(t *testing.T) {
	admin := principal.FromProfile(uuid.New(), &models.UserProfile{IsAdmin: true}, nil)

	assert.True(t, CanViewBook(admin, pendingBook(uuid.New(), nil)))
}

func TestModeratorSeesPendingOnlyInModeratedCategories(t *testing.T) {
	mine := uuid.New()
	other := uuid.New()
	mod := principal.FromProfile(uuid.New(),
		&models.UserProfile{IsModerator: true}, []uuid.UUID{mine})

	assert.True(t, CanViewBook(mod, pendingBook(uuid.New(), &mine)))
	assert.False(t, CanViewBook(mod, pendingBook(uuid.New(), &other)))

	// Approved books in foreign categories stay visible.
	foreign := pendingBook(uuid.New(), &other)
	foreign.Approval = models.ApprovalApproved
	assert.True(t, CanViewBook(mod, foreign))
}

func TestUncategorizedPendingBookIsAdminOnly(t *testing.T) {
	book := pendingBook(uuid.New(), nil)

	mod := principal.FromProfile(uuid.New(),
		&models.UserProfile{IsModerator: true}, []uuid.UUID{uuid.New()})
	assert.False(t, CanViewBook(mod, book))

	admin := principal.FromProfile(uuid.New(), &models.UserProfile{IsAdmin: true}, nil)
	assert.True(t, CanViewBook(admin, book))
}

func TestCommentThreadVisibility(t *testing.T) {
	catID := uuid.New()
	book := pendingBook(uuid.New(), &catID)

	admin := principal.FromProfile(uuid.New(), &models.UserProfile{IsAdmin: true}, nil)
	assert.True(t, CanViewAllComments(admin, book))

	mod := principal.FromProfile(uuid.New(),
		&models.UserProfile{IsModerator: true}, []uuid.UUID{catID})
	assert.True(t, CanViewAllComments(mod, book))

	outsideMod := principal.FromProfile(uuid.New(),
		&models.UserProfile{IsModerator: true}, []uuid.UUID{uuid.New()})
	assert.False(t, CanViewAllComments(outsideMod, book))

	user := principal.FromProfile(uuid.New(), nil, nil)
	assert.False(t, CanViewAllComments(user, book))

	assert.False(t, CanViewAllComments(principal.Guest(), book))
}

func TestCommentThreadOnUncategorizedBookIsAdminOnly(t *testing.T) {
	book := pendingBook(uuid.New(), nil)

	mod := principal.FromProfile(uuid.New(),
		&models.UserProfile{IsModerator: true}, []uuid.UUID{uuid.New()})
	assert.False(t, CanViewAllComments(mod, book))
}
