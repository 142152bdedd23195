package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-comments-api/internal/search"
	"github.com/rs/zerolog"
)

// SearchHandler proxies article searches to the external provider
type SearchHandler struct {
	client *search.Client
	log    zerolog.Logger
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(client *search.Client, log zerolog.Logger) *SearchHandler {
	return &SearchHandler{
		client: client,
		log:    log.With().Str("handler", "search").Logger(),
	}
}

// Search handles GET /api/search?q=
// The upstream JSON body is passed through untouched.
func (h *SearchHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, errorBody("invalid_input", "q parameter is required"))
		return
	}

	body, err := h.client.Search(ctx, query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
