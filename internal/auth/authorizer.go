package auth

import (
	"strings"

	"github.com/news-comments-api/internal/models"
)

// Authorizer decides whether an identity may moderate comments. A capability
// interface so the check can move to an external authorization mapping
// without touching the comment service.
type Authorizer interface {
	IsModerator(user *models.User) bool
}

// roleAuthorizer grants moderation to identities carrying the moderator role
// claim, plus a configured allowlist of moderator emails for providers that
// do not assert roles.
type roleAuthorizer struct {
	moderatorEmails map[string]bool
}

// NewRoleAuthorizer creates an Authorizer from the configured moderator list
func NewRoleAuthorizer(moderatorEmails []string) Authorizer {
	emails := make(map[string]bool, len(moderatorEmails))
	for _, e := range moderatorEmails {
		emails[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return &roleAuthorizer{moderatorEmails: emails}
}

func (a *roleAuthorizer) IsModerator(user *models.User) bool {
	if user == nil {
		return false
	}
	if user.HasRole(models.RoleModerator) {
		return true
	}
	return a.moderatorEmails[strings.ToLower(user.Email)]
}
