package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/news-comments-api/internal/config"
	"github.com/news-comments-api/internal/session"
)

const (
	ctxSessionToken = "session_token"
	ctxSession      = "session"
)

// sessionMiddleware establishes a session implicitly on first request: it
// reads the session cookie, minting a fresh token when absent, and attaches
// the token and current session record to the request context.
func sessionMiddleware(sessions session.Store, cfg *config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || token == "" {
			token = uuid.New().String()
			c.SetCookie(cfg.CookieName, token, int(cfg.CookieMaxAge.Seconds()), "/", "", false, true)
		}

		sess, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			// A broken session backend must not take down public reads;
			// the request proceeds anonymous.
			sess = session.Session{}
		}

		c.Set(ctxSessionToken, token)
		c.Set(ctxSession, sess)
		c.Next()
	}
}

// sessionFromContext returns the session attached by the middleware
func sessionFromContext(c *gin.Context) session.Session {
	if v, ok := c.Get(ctxSession); ok {
		if sess, ok := v.(session.Session); ok {
			return sess
		}
	}
	return session.Session{}
}

// sessionTokenFromContext returns the session token attached by the middleware
func sessionTokenFromContext(c *gin.Context) string {
	return c.GetString(ctxSessionToken)
}
