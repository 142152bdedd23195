package session

import (
	"context"

	"github.com/news-comments-api/internal/models"
)

// Session is the per-agent record backing authorization decisions.
// Nonce is set when a login is initiated and consumed exactly once during
// token validation. User is absent until the OIDC exchange succeeds.
type Session struct {
	Nonce string
	User  *models.User
}

// Authenticated reports whether the session carries a verified identity
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}

// Store maps an opaque session token to a Session record. It is a pure
// capability with no policy of its own; implementations must make
// Update atomic per token so concurrent requests from the same agent
// cannot corrupt the record. Implementations may be backed by an
// external cache for multi-instance deployments.
type Store interface {
	// Get returns the session for the token, or an empty session if none exists
	Get(ctx context.Context, token string) (Session, error)
	// Update applies fn to the session under the store's per-token lock
	// and persists the result
	Update(ctx context.Context, token string, fn func(*Session)) error
	// Clear removes the session entirely
	Clear(ctx context.Context, token string) error
}
