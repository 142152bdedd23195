package service

import (
	"context"

	"github.com/news-comments-api/internal/auth"
	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/repository"
	"github.com/news-comments-api/internal/session"
	"github.com/rs/zerolog"
)

// CommentService defines the sole mutation and query path for comments
type CommentService interface {
	// ListForArticle returns an article's comments in deterministic order;
	// an article with no comments yields an empty slice, not an error
	ListForArticle(ctx context.Context, articleID string) ([]models.CommentResponse, error)
	// Post creates a comment authored by the session's verified identity
	Post(ctx context.Context, sess session.Session, articleID, text string, parentID *string) (*models.CommentResponse, error)
	// Redact irreversibly replaces a comment's text with the moderation notice
	Redact(ctx context.Context, sess session.Session, commentID string) error
	// CommentCount reports the total number of stored comments
	CommentCount(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, authorizer auth.Authorizer, log zerolog.Logger) *Services {
	return &Services{
		Comment: newCommentService(repos.Comment, authorizer, log),
	}
}
