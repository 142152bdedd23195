package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-comments-api/internal/auth"
	"github.com/news-comments-api/internal/config"
	"github.com/news-comments-api/internal/search"
	"github.com/news-comments-api/internal/service"
	"github.com/news-comments-api/internal/session"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, sessions session.Store, oidc *auth.ProviderClient, searchClient *search.Client, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(sessionMiddleware(sessions, &cfg.Session))

	// Handlers
	commentHandler := NewCommentHandler(services, log)
	authHandler := NewAuthHandler(sessions, oidc, log)
	searchHandler := NewSearchHandler(searchClient, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// Comment API
	comments := router.Group("/api/comments")
	{
		comments.GET("/:articleId", commentHandler.ListComments)
		comments.POST("/:articleId", commentHandler.PostComment)
		comments.PATCH("/:commentId", commentHandler.RedactComment)
	}

	// Session identity
	router.GET("/api/user", authHandler.GetUser)

	// Article search proxy
	router.GET("/api/search", searchHandler.Search)

	// OIDC flow
	router.GET("/login", authHandler.Login)
	router.GET("/authorize", authHandler.Authorize)
	router.GET("/logout", authHandler.Logout)

	// Static frontend with SPA fallback
	router.NoRoute(spaHandler(&cfg.Server))

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "news-comments-api",
	})
}

// metricsHandler returns comment store metrics
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		commentsCount, _ := services.Comment.CommentCount(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"comments": commentsCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": gin.H{"kind": "internal", "message": "Internal server error"},
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
