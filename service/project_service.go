package service

import (
	"context"
	"strings"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/cache"
	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/models"
	"github.com/techmaster-vietnam/portfolio/utils"
)

// ProjectService handles project business logic
type ProjectService struct {
	repo  core.ProjectRepositoryInterface
	cache *ContentCache
}

// NewProjectService creates a new project service
func NewProjectService(repo core.ProjectRepositoryInterface, cc *ContentCache) *ProjectService {
	return &ProjectService{
		repo:  repo,
		cache: cc,
	}
}

// ProjectRequest represents create/update project request
// Với update, field rỗng (hoặc nil) nghĩa là giữ nguyên giá trị cũ
type ProjectRequest struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Summary     string  `json:"summary"`
	Description string  `json:"description"`
	Type        *string `json:"type"` // "" để bỏ phân loại
	TechStack   string  `json:"tech_stack"`
	RepoURL     string  `json:"repo_url"`
	DemoURL     string  `json:"demo_url"`
	ImageURL    string  `json:"image_url"`
	Featured    *bool   `json:"featured"`
	SortOrder   *int    `json:"sort_order"`
}

// Create creates a new project and invalidates project caches
func (s *ProjectService) Create(ctx context.Context, req ProjectRequest) (*models.Project, error) {
	if err := utils.ValidateRequired("title", req.Title, "Tiêu đề là bắt buộc"); err != nil {
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

	project := &models.Project{Slug: slug}
	if err := s.apply(project, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(project); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi tạo project")
	}

	s.cache.Invalidator.OnProjectChanged(ctx, project)
	return project, nil
}

// Update updates a project identified by slug.
// Nếu slug đổi, cache chi tiết của slug cũ cũng bị xóa
func (s *ProjectService) Update(ctx context.Context, slug string, req ProjectRequest) (*models.Project, error) {
	project, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, lookupError(err, "Không tìm thấy project", "Lỗi khi lấy project", map[string]interface{}{
			"slug": slug,
		})
	}
	previous := *project

	if newSlug := strings.TrimSpace(req.Slug); newSlug != "" && newSlug != project.Slug {
		if err := utils.ValidateSlug(newSlug); err != nil {
			return nil, err
		}
		if err := s.ensureSlugAvailable(newSlug); err != nil {
			return nil, err
		}
		project.Slug = newSlug
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	if err := s.apply(project, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(project); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi cập nhật project")
	}

	s.cache.Invalidator.OnProjectChanged(ctx, project)
	if previous.Slug != project.Slug {
		s.cache.Invalidator.OnProjectChanged(ctx, &previous)
	}
	return project, nil
}

// Delete deletes a project and invalidates caches using its last-known state
func (s *ProjectService) Delete(ctx context.Context, slug string) error {
	project, err := s.repo.GetBySlug(slug)
	if err != nil {
		return lookupError(err, "Không tìm thấy project", "Lỗi khi lấy project", map[string]interface{}{
			"slug": slug,
		})
	}

	if err := s.repo.Delete(project.ID); err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi xóa project")
	}

	s.cache.Invalidator.OnProjectChanged(ctx, project)
	return nil
}

// List lists projects by type with pagination.
// Trang trong keyspace (page <= cache.MaxCachedPage) được cache, trang sau đọc thẳng DB
func (s *ProjectService) List(ctx context.Context, typeFilter string, page, perPage int) (Page[models.Project], error) {
	filter := strings.TrimSpace(typeFilter)
	if filter == "" {
		filter = cache.FilterAll
	}

	projectType := models.ProjectType("")
	if filter != cache.FilterAll {
		projectType = models.ProjectType(filter)
		if !projectType.IsValid() {
			return Page[models.Project]{}, goerrorkit.NewValidationError("Type không hợp lệ", map[string]interface{}{
				"field":    "type",
				"received": typeFilter,
				"allowed":  cache.ProjectTypeFilters(),
			})
		}
	}

	page = NormalizePage(page)
	perPage = NormalizePerPage(perPage)

	key := s.cache.Keys.ProjectsPage(filter, page, perPage)
	return cached(ctx, s.cache, key, cache.IsCacheablePage(page, perPage), func() (Page[models.Project], error) {
		projects, total, err := s.repo.List(projectType, offsetOf(page, perPage), perPage)
		if err != nil {
			return Page[models.Project]{}, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách project")
		}
		return NewPage(projects, total, page, perPage), nil
	})
}

// Initial lists the landing-page projects
func (s *ProjectService) Initial(ctx context.Context) ([]models.Project, error) {
	return cached(ctx, s.cache, s.cache.Keys.ProjectsInitial(), true, func() ([]models.Project, error) {
		projects, err := s.repo.Initial(InitialProjectsLimit)
		if err != nil {
			return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách project")
		}
		if projects == nil {
			projects = []models.Project{}
		}
		return projects, nil
	})
}

// Types lists project types that currently have projects
func (s *ProjectService) Types(ctx context.Context) ([]models.ProjectType, error) {
	return cached(ctx, s.cache, s.cache.Keys.ProjectTypes(), true, func() ([]models.ProjectType, error) {
		types, err := s.repo.DistinctTypes()
		if err != nil {
			return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách type")
		}
		if types == nil {
			types = []models.ProjectType{}
		}
		return types, nil
	})
}

// GetBySlug gets a project by slug (cached)
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return cached(ctx, s.cache, s.cache.Keys.ProjectDetail(slug), true, func() (*models.Project, error) {
		project, err := s.repo.GetBySlug(slug)
		if err != nil {
			return nil, lookupError(err, "Không tìm thấy project", "Lỗi khi lấy project", map[string]interface{}{
				"slug": slug,
			})
		}
		return project, nil
	})
}

func (s *ProjectService) ensureSlugAvailable(slug string) error {
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

// apply copies request fields onto project, validating as it goes
func (s *ProjectService) apply(project *models.Project, req ProjectRequest) error {
	if err := firstError(
		utils.ValidateOptionalURL("repo_url", req.RepoURL),
		utils.ValidateOptionalURL("demo_url", req.DemoURL),
		utils.ValidateOptionalURL("image_url", req.ImageURL),
	); err != nil {
		return err
	}

	if project.Title == "" {
		project.Title = req.Title
	}
	if req.Type != nil {
		projectType := models.ProjectType(strings.TrimSpace(*req.Type))
		if !projectType.IsValid() {
			return goerrorkit.NewValidationError("Type không hợp lệ", map[string]interface{}{
				"field":    "type",
				"received": *req.Type,
				"allowed":  models.AllProjectTypes,
			})
		}
		project.Type = projectType
	}
	if req.Summary != "" {
		project.Summary = req.Summary
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.TechStack != "" {
		project.TechStack = req.TechStack
	}
	if req.RepoURL != "" {
		project.RepoURL = req.RepoURL
	}
	if req.DemoURL != "" {
		project.DemoURL = req.DemoURL
	}
	if req.ImageURL != "" {
		project.ImageURL = req.ImageURL
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.SortOrder != nil {
		project.SortOrder = *req.SortOrder
	}
	return nil
}
