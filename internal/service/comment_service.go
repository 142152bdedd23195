package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/news-comments-api/internal/auth"
	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/repository"
	"github.com/news-comments-api/internal/session"
	"github.com/news-comments-api/internal/validation"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	commentRepo repository.CommentRepository
	authorizer  auth.Authorizer
	log         zerolog.Logger
	now         func() time.Time
}

// newCommentService creates a new CommentService
func newCommentService(commentRepo repository.CommentRepository, authorizer auth.Authorizer, log zerolog.Logger) *commentService {
	return &commentService{
		commentRepo: commentRepo,
		authorizer:  authorizer,
		log:         log.With().Str("service", "comment").Logger(),
		now:         time.Now,
	}
}

// ListForArticle returns the article's comments ordered ascending by
// (created_at, seq). Threading via parent ids is a presentation concern;
// the list stays flat. Public read, no authentication.
func (s *commentService) ListForArticle(ctx context.Context, articleID string) ([]models.CommentResponse, error) {
	comments, err := s.commentRepo.ListByArticle(ctx, articleID)
	if err != nil {
		s.log.Error().Err(err).Str("article_id", articleID).Msg("Failed to list comments")
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return lo.Map(comments, func(c *models.Comment, _ int) models.CommentResponse {
		return c.ToResponse()
	}), nil
}

// Post validates input and authorship, then persists a new comment. The
// author identity comes from the verified session, never from the request.
func (s *commentService) Post(ctx context.Context, sess session.Session, articleID, text string, parentID *string) (*models.CommentResponse, error) {
	if !sess.Authenticated() {
		return nil, models.ErrUnauthenticated
	}

	body, err := validation.CommentBody(text)
	if err != nil {
		return nil, err
	}

	// Dangling or cross-article parent ids are accepted; the presentation
	// layer ignores parents it cannot resolve.
	comment := &models.Comment{
		ID:          uuid.New().String(),
		ArticleID:   articleID,
		AuthorEmail: sess.User.Email,
		Body:        body,
		CreatedAt:   s.now().UTC(),
		ParentID:    parentID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.log.Error().Err(err).Str("article_id", articleID).Msg("Failed to create comment")
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.log.Info().
		Str("comment_id", comment.ID).
		Str("article_id", articleID).
		Str("author", comment.AuthorEmail).
		Msg("Comment posted")

	resp := comment.ToResponse()
	return &resp, nil
}

// Redact marks a comment removed and overwrites its text with the fixed
// notice. Authorization is checked before existence, so a non-moderator
// gets Forbidden whether or not the id exists. Idempotent: redacting an
// already-removed comment succeeds and changes nothing.
func (s *commentService) Redact(ctx context.Context, sess session.Session, commentID string) error {
	if !sess.Authenticated() {
		return models.ErrUnauthenticated
	}
	if !s.authorizer.IsModerator(sess.User) {
		return models.ErrForbidden
	}

	found, err := s.commentRepo.Redact(ctx, commentID)
	if err != nil {
		s.log.Error().Err(err).Str("comment_id", commentID).Msg("Failed to redact comment")
		return fmt.Errorf("failed to redact comment: %w", err)
	}
	if !found {
		return models.ErrNotFound
	}

	s.log.Info().
		Str("comment_id", commentID).
		Str("moderator", sess.User.Email).
		Msg("Comment redacted")

	return nil
}

// CommentCount returns the total number of stored comments
func (s *commentService) CommentCount(ctx context.Context) (int, error) {
	return s.commentRepo.Count(ctx)
}
