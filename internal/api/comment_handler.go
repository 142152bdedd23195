package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/comments/:articleId
// Public read; an article with no comments yields an empty array.
func (h *CommentHandler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("articleId")

	comments, err := h.services.Comment.ListForArticle(ctx, articleID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// PostComment handles POST /api/comments/:articleId
func (h *CommentHandler) PostComment(c *gin.Context) {
	ctx := c.Request.Context()
	articleID := c.Param("articleId")
	sess := sessionFromContext(c)

	var req models.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid_input", "request body must be valid JSON"))
		return
	}

	comment, err := h.services.Comment.Post(ctx, sess, articleID, req.Text, req.ParentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// RedactComment handles PATCH /api/comments/:commentId
func (h *CommentHandler) RedactComment(c *gin.Context) {
	ctx := c.Request.Context()
	commentID := c.Param("commentId")
	sess := sessionFromContext(c)

	if err := h.services.Comment.Redact(ctx, sess, commentID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
