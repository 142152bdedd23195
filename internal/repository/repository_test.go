package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/news-comments-api/internal/mocks"
	"github.com/news-comments-api/internal/models"
)

func TestMockCommentRepository_CreateAssignsSequence(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	now := time.Now().UTC()
	first := &models.Comment{ID: "c-1", ArticleID: "art-1", AuthorEmail: "a@x.com", Body: "first", CreatedAt: now}
	second := &models.Comment{ID: "c-2", ArticleID: "art-1", AuthorEmail: "a@x.com", Body: "second", CreatedAt: now}

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if first.Seq >= second.Seq {
		t.Errorf("Expected monotonic sequence, got %d then %d", first.Seq, second.Seq)
	}
}

func TestMockCommentRepository_ListOrdering(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo.Create(ctx, &models.Comment{ID: "c-late", ArticleID: "art-1", AuthorEmail: "a@x.com", Body: "late", CreatedAt: base.Add(time.Second)})
	repo.Create(ctx, &models.Comment{ID: "c-early", ArticleID: "art-1", AuthorEmail: "a@x.com", Body: "early", CreatedAt: base})

	comments, err := repo.ListByArticle(ctx, "art-1")
	if err != nil {
		t.Fatalf("ListByArticle failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	if comments[0].ID != "c-early" || comments[1].ID != "c-late" {
		t.Errorf("Expected ascending created_at order, got %s, %s", comments[0].ID, comments[1].ID)
	}
}

func TestMockCommentRepository_Redact(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	repo.Create(ctx, &models.Comment{ID: "c-1", ArticleID: "art-1", AuthorEmail: "a@x.com", Body: "text", CreatedAt: time.Now()})

	found, err := repo.Redact(ctx, "c-1")
	if err != nil {
		t.Fatalf("Redact failed: %v", err)
	}
	if !found {
		t.Fatal("Expected comment found")
	}

	stored, _ := repo.GetByID(ctx, "c-1")
	if !stored.Removed || stored.Body != models.RemovedNotice {
		t.Errorf("Expected removed comment with notice, got %+v", stored)
	}

	found, err = repo.Redact(ctx, "missing")
	if err != nil {
		t.Fatalf("Redact failed: %v", err)
	}
	if found {
		t.Error("Expected found=false for missing id")
	}
}
