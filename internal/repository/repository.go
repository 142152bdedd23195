package repository

import (
	"context"

	"github.com/news-comments-api/internal/database"
	"github.com/news-comments-api/internal/models"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	// Create inserts a new comment; the store assigns the tie-break sequence
	Create(ctx context.Context, comment *models.Comment) error
	// ListByArticle returns an article's comments ordered by (created_at, seq)
	ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	// Redact marks a comment removed and replaces its body with the notice.
	// Returns false when no comment with the id exists. Idempotent.
	Redact(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Comment: NewCommentRepo(db),
	}
}
