package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-comments-api/internal/models"
)

// writeError translates a service error into a status code and structured
// JSON body. Store-level I/O failures surface as 500 without leaking
// connection details.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, errorBody("unauthenticated", "authentication required"))
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, errorBody("forbidden", "moderator role required"))
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorBody("invalid_input", err.Error()))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody("not_found", "comment not found"))
	case errors.Is(err, models.ErrAuthenticationFailed):
		c.JSON(http.StatusUnauthorized, errorBody("authentication_failure", "login could not be completed"))
	case errors.Is(err, models.ErrUpstream):
		c.JSON(http.StatusBadGateway, errorBody("upstream_error", "upstream service unavailable"))
	default:
		c.JSON(http.StatusInternalServerError, errorBody("internal", "internal server error"))
	}
}

func errorBody(kind, message string) gin.H {
	return gin.H{"error": gin.H{"kind": kind, "message": message}}
}
