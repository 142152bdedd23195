package models

import (
	"time"
)

// RemovedNotice replaces the body of a redacted comment. Redaction is
// irreversible; the original text is not retained.
const RemovedNotice = "This comment has been removed by a moderator."

// MaxCommentWords is the maximum allowed words in a comment body
const MaxCommentWords = 500

// Comment represents a comment attached to an external article.
// Articles are identified only by opaque key; no article registry exists.
type Comment struct {
	ID          string    `json:"id" db:"id"`
	ArticleID   string    `json:"article_id" db:"article_id"`
	AuthorEmail string    `json:"author_email" db:"author_email"`
	Body        string    `json:"body" db:"body"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	// Seq is a store-assigned monotonic sequence that breaks created_at ties,
	// so per-article ordering stays deterministic under concurrent writes.
	Seq      int64   `json:"-" db:"seq"`
	ParentID *string `json:"parent_id,omitempty" db:"parent_id"`
	Removed  bool    `json:"removed" db:"removed"`
}

// PostCommentRequest is the body of POST /api/comments/:articleId
type PostCommentRequest struct {
	Text     string  `json:"text"`
	ParentID *string `json:"parentId,omitempty"`
}

// CommentResponse is the wire shape the frontend consumes
type CommentResponse struct {
	ID        string  `json:"id"`
	User      string  `json:"user"`
	Text      string  `json:"text"`
	CreatedAt string  `json:"createdAt"`
	ParentID  *string `json:"parentId,omitempty"`
	Removed   bool    `json:"removed,omitempty"`
}

// ToResponse shapes a stored comment for the HTTP boundary
func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		User:      c.AuthorEmail,
		Text:      c.Body,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		ParentID:  c.ParentID,
		Removed:   c.Removed,
	}
}
