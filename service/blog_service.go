package service

import (
	"context"
	"strings"
	"time"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/models"
	"github.com/techmaster-vietnam/portfolio/utils"
)

const (
	defaultBlogListLimit = 10
	maxBlogListLimit     = 50
)

// BlogService handles blog post business logic
type BlogService struct {
	repo  core.BlogPostRepositoryInterface
	cache *ContentCache
	now   func() time.Time
}

// NewBlogService creates a new blog service
func NewBlogService(repo core.BlogPostRepositoryInterface, cc *ContentCache) *BlogService {
	return &BlogService{
		repo:  repo,
		cache: cc,
		now:   time.Now,
	}
}

// BlogPostRequest represents create/update blog post request
type BlogPostRequest struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	CoverURL  string `json:"cover_url"`
	ProjectID *uint  `json:"project_id"` // 0 để gỡ liên kết project
	Published *bool  `json:"published"`
}

// BlogListFilter represents query parameters for listing blog posts
type BlogListFilter struct {
	ProjectID *uint
	Page      int
	Limit     int
}

// Create creates a new blog post and invalidates blog caches
func (s *BlogService) Create(ctx context.Context, req BlogPostRequest) (*models.BlogPost, error) {
	if err := firstError(
		utils.ValidateRequired("title", req.Title, "Tiêu đề là bắt buộc"),
		utils.ValidateRequired("content", req.Content, "Nội dung là bắt buộc"),
		utils.ValidateMaxLength("excerpt", req.Excerpt, 500),
		utils.ValidateOptionalURL("cover_url", req.CoverURL),
	); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	if err := utils.ValidateSlug(slug); err != nil {
		return nil, err
	}
	if err := s.ensureSlugAvailable(slug); err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		Slug:     slug,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		CoverURL: req.CoverURL,
	}
	s.applyRelations(post, req)

	if err := s.repo.Create(post); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi tạo bài viết")
	}

	s.cache.Invalidator.OnBlogPostChanged(ctx, post)
	return post, nil
}

// Update updates a blog post identified by slug
func (s *BlogService) Update(ctx context.Context, slug string, req BlogPostRequest) (*models.BlogPost, error) {
	post, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, lookupError(err, "Không tìm thấy bài viết", "Lỗi khi lấy bài viết", map[string]interface{}{
			"slug": slug,
		})
	}
	previous := *post

	if err := firstError(
		utils.ValidateMaxLength("excerpt", req.Excerpt, 500),
		utils.ValidateOptionalURL("cover_url", req.CoverURL),
	); err != nil {
		return nil, err
	}

	if newSlug := strings.TrimSpace(req.Slug); newSlug != "" && newSlug != post.Slug {
		if err := utils.ValidateSlug(newSlug); err != nil {
			return nil, err
		}
		if err := s.ensureSlugAvailable(newSlug); err != nil {
			return nil, err
		}
		post.Slug = newSlug
	}
	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Excerpt != "" {
		post.Excerpt = req.Excerpt
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.CoverURL != "" {
		post.CoverURL = req.CoverURL
	}
	s.applyRelations(post, req)

	if err := s.repo.Update(post); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi cập nhật bài viết")
	}

	s.cache.Invalidator.OnBlogPostChanged(ctx, post)
	if previous.Slug != post.Slug {
		s.cache.Invalidator.OnBlogPostChanged(ctx, &previous)
	}
	return post, nil
}

// Delete deletes a blog post
func (s *BlogService) Delete(ctx context.Context, slug string) error {
	post, err := s.repo.GetBySlug(slug)
	if err != nil {
		return lookupError(err, "Không tìm thấy bài viết", "Lỗi khi lấy bài viết", map[string]interface{}{
			"slug": slug,
		})
	}

	if err := s.repo.Delete(post.ID); err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi xóa bài viết")
	}

	s.cache.Invalidator.OnBlogPostChanged(ctx, post)
	return nil
}

// Recent lists the latest published posts (cached)
func (s *BlogService) Recent(ctx context.Context) ([]models.BlogPost, error) {
	return cached(ctx, s.cache, s.cache.Keys.BlogsRecent(), true, func() ([]models.BlogPost, error) {
		posts, err := s.repo.Recent(RecentBlogsLimit)
		if err != nil {
			return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy bài viết mới nhất")
		}
		if posts == nil {
			posts = []models.BlogPost{}
		}
		return posts, nil
	})
}

// GetBySlug gets a published blog post by slug (cached).
// Bài viết chưa publish trả về 404 như không tồn tại
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return cached(ctx, s.cache, s.cache.Keys.BlogDetail(slug), true, func() (*models.BlogPost, error) {
		post, err := s.repo.GetBySlug(slug)
		if err != nil {
			return nil, lookupError(err, "Không tìm thấy bài viết", "Lỗi khi lấy bài viết", map[string]interface{}{
				"slug": slug,
			})
		}
		if !post.Published {
			return nil, goerrorkit.NewBusinessError(404, "Không tìm thấy bài viết").WithData(map[string]interface{}{
				"slug": slug,
			})
		}
		return post, nil
	})
}

// List lists published blog posts. Danh sách đầy đủ không nằm trong keyspace nên đọc thẳng DB
func (s *BlogService) List(filter BlogListFilter) (Page[models.BlogPost], error) {
	return s.list(core.BlogPostFilter{ProjectID: filter.ProjectID, PublishedOnly: true}, filter)
}

// AdminList lists all blog posts including drafts
func (s *BlogService) AdminList(filter BlogListFilter) (Page[models.BlogPost], error) {
	return s.list(core.BlogPostFilter{ProjectID: filter.ProjectID}, filter)
}

// AdminGet gets a blog post by slug without the published check, bỏ qua cache
func (s *BlogService) AdminGet(slug string) (*models.BlogPost, error) {
	post, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, lookupError(err, "Không tìm thấy bài viết", "Lỗi khi lấy bài viết", map[string]interface{}{
			"slug": slug,
		})
	}
	return post, nil
}

func (s *BlogService) list(repoFilter core.BlogPostFilter, filter BlogListFilter) (Page[models.BlogPost], error) {
	page := NormalizePage(filter.Page)
	limit := ClampLimit(filter.Limit, defaultBlogListLimit, maxBlogListLimit)

	posts, total, err := s.repo.List(repoFilter, offsetOf(page, limit), limit)
	if err != nil {
		return Page[models.BlogPost]{}, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách bài viết")
	}
	return NewPage(posts, total, page, limit), nil
}

func (s *BlogService) ensureSlugAvailable(slug string) error {
	_, err := s.repo.GetBySlug(slug)
	if err == nil {
		return goerrorkit.NewBusinessError(409, "Slug đã tồn tại").WithData(map[string]interface{}{
			"slug": slug,
		})
	}
	if !isNotFound(err) {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi kiểm tra slug")
	}
	return nil
}

// applyRelations cập nhật project liên kết và trạng thái publish.
// PublishedAt được gán lần đầu bài viết publish và giữ nguyên khi unpublish
func (s *BlogService) applyRelations(post *models.BlogPost, req BlogPostRequest) {
	if req.ProjectID != nil {
		if *req.ProjectID == 0 {
			post.ProjectID = nil
		} else {
			id := *req.ProjectID
			post.ProjectID = &id
		}
	}
	if req.Published != nil {
		post.Published = *req.Published
		if post.Published && post.PublishedAt == nil {
			now := s.now()
			post.PublishedAt = &now
		}
	}
}
