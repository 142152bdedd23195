package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/news-comments-api/internal/auth"
	"github.com/news-comments-api/internal/mocks"
	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/repository"
	"github.com/news-comments-api/internal/service"
	"github.com/news-comments-api/internal/session"
	"github.com/rs/zerolog"
)

func setupCommentService() (service.CommentService, *mocks.MockCommentRepository) {
	mockRepo := mocks.NewMockCommentRepository()
	repos := &repository.Repositories{Comment: mockRepo}
	authorizer := auth.NewRoleAuthorizer([]string{"moderator@hw3.com"})
	services := service.NewServices(repos, authorizer, zerolog.Nop())
	return services.Comment, mockRepo
}

func authedSession(email string, roles ...string) session.Session {
	return session.Session{User: &models.User{Email: email, Roles: roles}}
}

func TestPost_CreatesComment(t *testing.T) {
	svc, _ := setupCommentService()
	ctx := context.Background()

	before := time.Now().UTC().Truncate(time.Second)
	created, err := svc.Post(ctx, authedSession("alice@x.com"), "art-1", "  hello  ", nil)
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	if created.Text != "hello" {
		t.Errorf("Expected trimmed text 'hello', got %q", created.Text)
	}
	if created.User != "alice@x.com" {
		t.Errorf("Expected author 'alice@x.com', got %q", created.User)
	}
	if created.ID == "" {
		t.Error("Expected store-assigned id")
	}

	createdAt, err := time.Parse(time.RFC3339, created.CreatedAt)
	if err != nil {
		t.Fatalf("createdAt is not RFC3339: %v", err)
	}
	if createdAt.Before(before) {
		t.Errorf("createdAt %v is before the call at %v", createdAt, before)
	}

	comments, err := svc.ListForArticle(ctx, "art-1")
	if err != nil {
		t.Fatalf("ListForArticle failed: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(comments))
	}
	if comments[0].ID != created.ID {
		t.Errorf("Expected comment %s in list, got %s", created.ID, comments[0].ID)
	}
}

func TestPost_Unauthenticated(t *testing.T) {
	svc, mockRepo := setupCommentService()
	ctx := context.Background()

	_, err := svc.Post(ctx, session.Session{}, "art-1", "hello", nil)
	if !errors.Is(err, models.ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated, got %v", err)
	}

	if count, _ := mockRepo.Count(ctx); count != 0 {
		t.Errorf("Expected no writes, found %d comments", count)
	}
}

func TestPost_EmptyText(t *testing.T) {
	svc, mockRepo := setupCommentService()
	ctx := context.Background()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"whitespace", "\n\t  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Post(ctx, authedSession("alice@x.com"), "art-1", tt.text, nil)
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}

	if count, _ := mockRepo.Count(ctx); count != 0 {
		t.Errorf("Expected no writes, found %d comments", count)
	}
}

func TestPost_WithParent(t *testing.T) {
	svc, _ := setupCommentService()
	ctx := context.Background()

	root, err := svc.Post(ctx, authedSession("alice@x.com"), "art-1", "root", nil)
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	reply, err := svc.Post(ctx, authedSession("bob@x.com"), "art-1", "reply", &root.ID)
	if err != nil {
		t.Fatalf("Post reply failed: %v", err)
	}
	if reply.ParentID == nil || *reply.ParentID != root.ID {
		t.Errorf("Expected parentId %s, got %v", root.ID, reply.ParentID)
	}

	// Dangling parents are accepted; threading is resolved at presentation time
	dangling := "no-such-comment"
	orphan, err := svc.Post(ctx, authedSession("bob@x.com"), "art-1", "orphan", &dangling)
	if err != nil {
		t.Fatalf("Post with dangling parent failed: %v", err)
	}
	if orphan.ParentID == nil || *orphan.ParentID != dangling {
		t.Errorf("Expected dangling parentId to be stored, got %v", orphan.ParentID)
	}
}

func TestListForArticle_Empty(t *testing.T) {
	svc, _ := setupCommentService()

	comments, err := svc.ListForArticle(context.Background(), "no-comments")
	if err != nil {
		t.Fatalf("ListForArticle failed: %v", err)
	}
	if comments == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(comments) != 0 {
		t.Errorf("Expected 0 comments, got %d", len(comments))
	}
}

func TestListForArticle_Ordering(t *testing.T) {
	svc, mockRepo := setupCommentService()
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// Later timestamp inserted first; a tie on the middle pair is broken by
	// the store-assigned sequence.
	seed := []*models.Comment{
		{ID: "c-late", ArticleID: "art-1", AuthorEmail: "a@x.com", Body: "late", CreatedAt: base.Add(time.Minute)},
		{ID: "c-tie-1", ArticleID: "art-1", AuthorEmail: "a@x.com", Body: "tie one", CreatedAt: base},
		{ID: "c-tie-2", ArticleID: "art-1", AuthorEmail: "a@x.com", Body: "tie two", CreatedAt: base},
		{ID: "c-other", ArticleID: "art-2", AuthorEmail: "a@x.com", Body: "other article", CreatedAt: base},
	}
	for _, c := range seed {
		if err := mockRepo.Create(ctx, c); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	want := []string{"c-tie-1", "c-tie-2", "c-late"}

	// Ordering must be reproducible across reads
	for i := 0; i < 3; i++ {
		comments, err := svc.ListForArticle(ctx, "art-1")
		if err != nil {
			t.Fatalf("ListForArticle failed: %v", err)
		}
		if len(comments) != len(want) {
			t.Fatalf("Expected %d comments, got %d", len(want), len(comments))
		}
		for j, id := range want {
			if comments[j].ID != id {
				t.Errorf("Position %d: expected %s, got %s", j, id, comments[j].ID)
			}
		}
	}
}

func TestRedact_SetsNoticeAndIsIdempotent(t *testing.T) {
	svc, mockRepo := setupCommentService()
	ctx := context.Background()

	created, err := svc.Post(ctx, authedSession("alice@x.com"), "art-1", "hot take", nil)
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	moderator := authedSession("moderator@hw3.com")
	if err := svc.Redact(ctx, moderator, created.ID); err != nil {
		t.Fatalf("Redact failed: %v", err)
	}

	stored, _ := mockRepo.GetByID(ctx, created.ID)
	if !stored.Removed {
		t.Error("Expected removed flag set")
	}
	if stored.Body != models.RemovedNotice {
		t.Errorf("Expected body %q, got %q", models.RemovedNotice, stored.Body)
	}

	// Second redact succeeds and leaves state unchanged
	if err := svc.Redact(ctx, moderator, created.ID); err != nil {
		t.Fatalf("Second redact failed: %v", err)
	}
	again, _ := mockRepo.GetByID(ctx, created.ID)
	if !again.Removed || again.Body != models.RemovedNotice {
		t.Error("Expected state unchanged after second redact")
	}
}

func TestRedact_RoleClaim(t *testing.T) {
	svc, _ := setupCommentService()
	ctx := context.Background()

	created, err := svc.Post(ctx, authedSession("alice@x.com"), "art-1", "text", nil)
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	// Not in the configured email list, but carries the moderator role claim
	if err := svc.Redact(ctx, authedSession("admin@other.org", models.RoleModerator), created.ID); err != nil {
		t.Errorf("Expected role claim to grant moderation, got %v", err)
	}
}

func TestRedact_AuthorizationErrors(t *testing.T) {
	svc, mockRepo := setupCommentService()
	ctx := context.Background()

	created, err := svc.Post(ctx, authedSession("alice@x.com"), "art-1", "text", nil)
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	if err := svc.Redact(ctx, session.Session{}, created.ID); !errors.Is(err, models.ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated, got %v", err)
	}

	if err := svc.Redact(ctx, authedSession("bob@x.com"), created.ID); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("Expected ErrForbidden, got %v", err)
	}

	// Authorization is checked before existence
	if err := svc.Redact(ctx, authedSession("bob@x.com"), "missing-id"); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for non-moderator on missing id, got %v", err)
	}

	if err := svc.Redact(ctx, authedSession("moderator@hw3.com"), "missing-id"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	stored, _ := mockRepo.GetByID(ctx, created.ID)
	if stored.Removed {
		t.Error("Failed redacts must not mutate the comment")
	}
}
