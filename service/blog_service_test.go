package service

import (
	"context"
	"testing"
	"time"

	"github.com/techmaster-vietnam/portfolio/models"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
}

func TestBlogService_Create_PublishSetsPublishedAt(t *testing.T) {
	repo := NewMockBlogPostRepository()
	cc, recorder := newRecordingCache()
	svc := NewBlogService(repo, cc)
	svc.now = fixedClock

	post, err := svc.Create(context.Background(), BlogPostRequest{
		Title:     "Bài viết đầu tiên",
		Content:   "Nội dung",
		ProjectID: uintPtr(4),
		Published: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if post.Slug != "bai-viet-dau-tien" {
		t.Errorf("Expected slug 'bai-viet-dau-tien', got %q", post.Slug)
	}
	if post.PublishedAt == nil || !post.PublishedAt.Equal(fixedClock()) {
		t.Errorf("Expected PublishedAt to be set, got %v", post.PublishedAt)
	}
	if post.ProjectID == nil || *post.ProjectID != 4 {
		t.Errorf("Expected project id 4, got %v", post.ProjectID)
	}
	if !equalCalls(recorder.calls, []string{"blog:bai-viet-dau-tien"}) {
		t.Errorf("Expected blog invalidation, got %v", recorder.calls)
	}
}

func TestBlogService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  BlogPostRequest
	}{
		{name: "thiếu title", req: BlogPostRequest{Content: "x"}},
		{name: "thiếu content", req: BlogPostRequest{Title: "x"}},
		{name: "cover url sai", req: BlogPostRequest{Title: "x", Content: "x", CoverURL: "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, recorder := newRecordingCache()
			svc := NewBlogService(NewMockBlogPostRepository(), cc)

			_, err := svc.Create(context.Background(), tt.req)
			expectValidationError(t, err)
			if len(recorder.calls) != 0 {
				t.Errorf("Expected no invalidation, got %v", recorder.calls)
			}
		})
	}
}

func TestBlogService_Update(t *testing.T) {
	repo := NewMockBlogPostRepository()
	projectID := uint(2)
	_ = repo.Create(&models.BlogPost{Slug: "draft", Title: "Draft", Content: "c", ProjectID: &projectID})
	cc, recorder := newRecordingCache()
	svc := NewBlogService(repo, cc)
	svc.now = fixedClock

	post, err := svc.Update(context.Background(), "draft", BlogPostRequest{
		Slug:      "published",
		ProjectID: uintPtr(0),
		Published: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if post.ProjectID != nil {
		t.Errorf("Expected project link to be removed, got %v", *post.ProjectID)
	}
	if !post.Published || post.PublishedAt == nil {
		t.Errorf("Expected post to be published")
	}
	want := []string{"blog:published", "blog:draft"}
	if !equalCalls(recorder.calls, want) {
		t.Errorf("Expected invalidation %v, got %v", want, recorder.calls)
	}
}

func TestBlogService_Unpublish_KeepsPublishedAt(t *testing.T) {
	repo := NewMockBlogPostRepository()
	publishedAt := fixedClock().Add(-time.Hour)
	_ = repo.Create(&models.BlogPost{Slug: "post", Title: "Post", Content: "c", Published: true, PublishedAt: &publishedAt})
	cc, _ := newRecordingCache()
	svc := NewBlogService(repo, cc)

	post, err := svc.Update(context.Background(), "post", BlogPostRequest{Published: boolPtr(false)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if post.Published {
		t.Errorf("Expected post to be unpublished")
	}
	if post.PublishedAt == nil || !post.PublishedAt.Equal(publishedAt) {
		t.Errorf("Expected PublishedAt to be kept, got %v", post.PublishedAt)
	}
}

func TestBlogService_GetBySlug_HidesDrafts(t *testing.T) {
	ctx := context.Background()
	repo := NewMockBlogPostRepository()
	_ = repo.Create(&models.BlogPost{Slug: "draft", Title: "Draft", Content: "c"})
	svc := NewBlogService(repo, newMemoryCache(t))

	_, err := svc.GetBySlug(ctx, "draft")
	expectBusinessError(t, err)

	post, err := svc.AdminGet("draft")
	if err != nil {
		t.Fatalf("Expected admin to see drafts, got %v", err)
	}
	if post.Slug != "draft" {
		t.Errorf("Expected draft, got %q", post.Slug)
	}

	if _, err := svc.Update(ctx, "draft", BlogPostRequest{Published: boolPtr(true)}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.GetBySlug(ctx, "draft"); err != nil {
		t.Errorf("Expected published post to be visible, got %v", err)
	}
}

func TestBlogService_Recent_RefreshedAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMockBlogPostRepository()
	_ = repo.Create(&models.BlogPost{Slug: "one", Title: "One", Content: "c", Published: true})
	_ = repo.Create(&models.BlogPost{Slug: "two", Title: "Two", Content: "c", Published: true})
	svc := NewBlogService(repo, newMemoryCache(t))

	recent, err := svc.Recent(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent posts, got %d", len(recent))
	}

	if err := svc.Delete(ctx, "one"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	recent, err = svc.Recent(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(recent) != 1 || recent[0].Slug != "two" {
		t.Errorf("Expected only 'two' after delete, got %+v", recent)
	}
}

func TestBlogService_List(t *testing.T) {
	repo := NewMockBlogPostRepository()
	projectID := uint(7)
	_ = repo.Create(&models.BlogPost{Slug: "a", Title: "A", Content: "c", Published: true, ProjectID: &projectID})
	_ = repo.Create(&models.BlogPost{Slug: "b", Title: "B", Content: "c", Published: true})
	_ = repo.Create(&models.BlogPost{Slug: "c", Title: "C", Content: "c"})
	cc, _ := newRecordingCache()
	svc := NewBlogService(repo, cc)

	public, err := svc.List(BlogListFilter{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if public.Total != 2 || public.PerPage != defaultBlogListLimit {
		t.Errorf("Expected 2 published posts with default limit, got total %d limit %d", public.Total, public.PerPage)
	}

	byProject, err := svc.List(BlogListFilter{ProjectID: &projectID})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if byProject.Total != 1 || byProject.Items[0].Slug != "a" {
		t.Errorf("Expected only post 'a' for project, got %+v", byProject.Items)
	}

	admin, err := svc.AdminList(BlogListFilter{Limit: 500})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if admin.Total != 3 || admin.PerPage != maxBlogListLimit {
		t.Errorf("Expected 3 posts with clamped limit, got total %d limit %d", admin.Total, admin.PerPage)
	}
}
