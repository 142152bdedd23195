package repository

import (
	"context"
	"database/sql"

	"github.com/news-comments-api/internal/database"
	"github.com/news-comments-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment. The seq column is a BIGSERIAL, so the
// database assigns the monotonic tie-break for created_at collisions.
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, article_id, author_email, body, created_at, parent_id, removed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq
	`
	return r.db.QueryRowContext(ctx, query,
		comment.ID, comment.ArticleID, comment.AuthorEmail, comment.Body,
		comment.CreatedAt, comment.ParentID, comment.Removed,
	).Scan(&comment.Seq)
}

// ListByArticle returns all comments for an article in deterministic order
func (r *commentRepo) ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	query := `
		SELECT id, article_id, author_email, body, created_at, seq, parent_id, removed
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at ASC, seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.ArticleID, &comment.AuthorEmail, &comment.Body,
			&comment.CreatedAt, &comment.Seq, &comment.ParentID, &comment.Removed,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `
		SELECT id, article_id, author_email, body, created_at, seq, parent_id, removed
		FROM comments
		WHERE id = $1
	`
	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.ArticleID, &comment.AuthorEmail, &comment.Body,
		&comment.CreatedAt, &comment.Seq, &comment.ParentID, &comment.Removed,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Redact sets removed and overwrites the body in a single statement, so the
// write is atomic per row and converges regardless of concurrent redacts.
func (r *commentRepo) Redact(ctx context.Context, id string) (bool, error) {
	query := `UPDATE comments SET removed = TRUE, body = $2 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, models.RemovedNotice)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
