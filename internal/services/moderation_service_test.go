package services

import (
	"testing"

	"github.com/pagewise/bookstore-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDecisionState(t *testing.T) {
	assert.Equal(t, models.ApprovalApproved, decisionState(true))
	assert.Equal(t, models.ApprovalRejected, decisionState(false))
}

func TestEventActionsMatchDirection(t *testing.T) {
	assert.Equal(t, models.EventBookApproved, bookEventAction(true))
	assert.Equal(t, models.EventBookRejected, bookEventAction(false))
	assert.Equal(t, models.EventCommentApproved, commentEventAction(true))
	assert.Equal(t, models.EventCommentRejected, commentEventAction(false))
}

func TestEventDescriptionsNameTheContent(t *testing.T) {
	assert.Equal(t, "Your book 'Solaris' has been approved.",
		bookEventDescription("Solaris", true))
	assert.Equal(t, "Your book 'Solaris' has been rejected.",
		bookEventDescription("Solaris", false))
	assert.Equal(t, "Your comment on 'Solaris' has been approved.",
		commentEventDescription("Solaris", true))
	assert.Equal(t, "Your comment on 'Solaris' has been rejected.",
		commentEventDescription("Solaris", false))
}
