package principal

import (
	"github.com/google/uuid"
	"github.com/pagewise/bookstore-backend/internal/models"
)

// Principal is the resolved capability set of a caller. It is computed once
// per request; the moderated-category set is precomputed so authorization
// checks never go back to the database.
type Principal struct {
	UserID        uuid.UUID
	Authenticated bool
	Admin         bool
	Moderator     bool

	// Categories this user is registered to moderate. Only meaningful when
	// Moderator is set.
	ModeratedCategories map[uuid.UUID]struct{}
}

// Guest is the unauthenticated principal.
func Guest() Principal {
	return Principal{}
}

// FromProfile builds a principal for an authenticated user. A nil profile
// yields a plain authenticated user with no privileges; profile absence is
// never an error.
func FromProfile(userID uuid.UUID, profile *models.UserProfile, moderated []uuid.UUID) Principal {
	p := Principal{UserID: userID, Authenticated: true}
	if profile == nil {
		return p
	}
	p.Admin = profile.IsAdmin
	p.Moderator = profile.IsModerator
	if p.Moderator && len(moderated) > 0 {
		p.ModeratedCategories = make(map[uuid.UUID]struct{}, len(moderated))
		for _, id := range moderated {
			p.ModeratedCategories[id] = struct{}{}
		}
	}
	return p
}

// Privileged reports whether the caller holds any reviewer role.
func (p Principal) Privileged() bool {
	return p.Admin || p.Moderator
}

// Moderates reports whether the caller is a registered moderator of the
// given category. A nil category has no moderator reviewer.
func (p Principal) Moderates(categoryID *uuid.UUID) bool {
	if !p.Moderator || categoryID == nil {
		return false
	}
	_, ok := p.ModeratedCategories[*categoryID]
	return ok
}

// CanModerate reports whether the caller may flip approval state for content
// in the given category. Admins always can; moderators only within their
// registered categories, which excludes uncategorized content.
func (p Principal) CanModerate(categoryID *uuid.UUID) bool {
	if p.Admin {
		return true
	}
	return p.Moderates(categoryID)
}

// ModeratedIDs returns the moderated-category set as a slice for use in SQL
// IN clauses.
func (p Principal) ModeratedIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.ModeratedCategories))
	for id := range p.ModeratedCategories {
		ids = append(ids, id)
	}
	return ids
}
