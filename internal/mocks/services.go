package mocks

import (
	"context"

	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/session"
)

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListFunc   func(ctx context.Context, articleID string) ([]models.CommentResponse, error)
	PostFunc   func(ctx context.Context, sess session.Session, articleID, text string, parentID *string) (*models.CommentResponse, error)
	RedactFunc func(ctx context.Context, sess session.Session, commentID string) error
	Counts     int
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{}
}

func (m *MockCommentService) ListForArticle(ctx context.Context, articleID string) ([]models.CommentResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, articleID)
	}
	return []models.CommentResponse{}, nil
}

func (m *MockCommentService) Post(ctx context.Context, sess session.Session, articleID, text string, parentID *string) (*models.CommentResponse, error) {
	if m.PostFunc != nil {
		return m.PostFunc(ctx, sess, articleID, text, parentID)
	}
	return &models.CommentResponse{}, nil
}

func (m *MockCommentService) Redact(ctx context.Context, sess session.Session, commentID string) error {
	if m.RedactFunc != nil {
		return m.RedactFunc(ctx, sess, commentID)
	}
	return nil
}

func (m *MockCommentService) CommentCount(ctx context.Context) (int, error) {
	return m.Counts, nil
}

// StaticVerifier is an IDTokenVerifier returning canned results, keyed by
// the raw token value
type StaticVerifier struct {
	Users map[string]*models.User
	Err   error
}

func NewStaticVerifier() *StaticVerifier {
	return &StaticVerifier{Users: make(map[string]*models.User)}
}

func (v *StaticVerifier) Verify(rawToken, expectedNonce string) (*models.User, error) {
	if v.Err != nil {
		return nil, v.Err
	}
	if user, ok := v.Users[rawToken]; ok {
		return user, nil
	}
	return nil, models.ErrAuthenticationFailed
}
