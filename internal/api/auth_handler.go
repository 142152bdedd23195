package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-comments-api/internal/auth"
	"github.com/news-comments-api/internal/session"
	"github.com/rs/zerolog"
)

// AuthHandler drives the OIDC login routes and session identity endpoint
type AuthHandler struct {
	sessions session.Store
	oidc     *auth.ProviderClient
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessions session.Store, oidc *auth.ProviderClient, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		oidc:     oidc,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles GET /login: binds a fresh nonce to the session and redirects
// the agent to the provider's authorization endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	token := sessionTokenFromContext(c)

	nonce, err := auth.GenerateNonce()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to generate nonce")
		writeError(c, err)
		return
	}

	if err := h.sessions.Update(ctx, token, func(s *session.Session) {
		s.Nonce = nonce
	}); err != nil {
		h.log.Error().Err(err).Msg("Failed to store nonce")
		writeError(c, err)
		return
	}

	redirectURL, err := h.oidc.AuthCodeURL(nonce)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build authorization URL")
		writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, redirectURL)
}

// Authorize handles GET /authorize, the provider callback. The session nonce
// is consumed exactly once, before the exchange, so a failed validation can
// never be replayed. The session user is populated only from a validated
// token.
func (h *AuthHandler) Authorize(c *gin.Context) {
	ctx := c.Request.Context()
	token := sessionTokenFromContext(c)
	code := c.Query("code")

	var nonce string
	if err := h.sessions.Update(ctx, token, func(s *session.Session) {
		nonce = s.Nonce
		s.Nonce = ""
	}); err != nil {
		h.log.Error().Err(err).Msg("Failed to consume nonce")
		writeError(c, err)
		return
	}

	user, err := h.oidc.Authenticate(ctx, code, nonce)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.sessions.Update(ctx, token, func(s *session.Session) {
		s.User = user
	}); err != nil {
		h.log.Error().Err(err).Msg("Failed to store session user")
		writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout: clears the session entirely
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	token := sessionTokenFromContext(c)

	if err := h.sessions.Clear(ctx, token); err != nil {
		h.log.Error().Err(err).Msg("Failed to clear session")
	}

	c.Redirect(http.StatusFound, "/")
}

// GetUser handles GET /api/user: returns the session identity, or an empty
// object with 401 when the session is anonymous.
func (h *AuthHandler) GetUser(c *gin.Context) {
	sess := sessionFromContext(c)
	if !sess.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{})
		return
	}

	c.JSON(http.StatusOK, sess.User)
}
