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

// ExperienceService handles work experience business logic
type ExperienceService struct {
	repo  core.ExperienceRepositoryInterface
	cache *ContentCache
}

// NewExperienceService creates a new experience service
func NewExperienceService(repo core.ExperienceRepositoryInterface, cc *ContentCache) *ExperienceService {
	return &ExperienceService{
		repo:  repo,
		cache: cc,
	}
}

// ExperienceRequest represents create/update experience request
type ExperienceRequest struct {
	Slug        string     `json:"slug"`
	Company     string     `json:"company"`
	Role        string     `json:"role"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Current     *bool      `json:"current"`
	SortOrder   *int       `json:"sort_order"`
}

// Create creates a new experience. Slug mặc định được sinh từ company và role
func (s *ExperienceService) Create(ctx context.Context, req ExperienceRequest) (*models.Experience, error) {
	if err := firstError(
		utils.ValidateRequired("company", req.Company, "Tên công ty là bắt buộc"),
		utils.ValidateRequired("role", req.Role, "Vị trí là bắt buộc"),
	); err != nil {
		return nil, err
	}
	if req.StartDate == nil {
		return nil, goerrorkit.NewValidationError("Ngày bắt đầu là bắt buộc", map[string]interface{}{
			"field": "start_date",
		})
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Company + " " + req.Role)
	}
	if err := utils.ValidateSlug(slug); err != nil {
		return nil, err
	}
	if err := s.ensureSlugAvailable(slug); err != nil {
		return nil, err
	}

	experience := &models.Experience{
		Slug:    slug,
		Company: req.Company,
		Role:    req.Role,
	}
	if err := s.apply(experience, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(experience); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi tạo kinh nghiệm làm việc")
	}

	s.cache.Invalidator.OnExperienceChanged(ctx, experience)
	return experience, nil
}

// Update updates an experience identified by slug
func (s *ExperienceService) Update(ctx context.Context, slug string, req ExperienceRequest) (*models.Experience, error) {
	experience, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, lookupError(err, "Không tìm thấy kinh nghiệm làm việc", "Lỗi khi lấy kinh nghiệm làm việc", map[string]interface{}{
			"slug": slug,
		})
	}
	previous := *experience

	if newSlug := strings.TrimSpace(req.Slug); newSlug != "" && newSlug != experience.Slug {
		if err := utils.ValidateSlug(newSlug); err != nil {
			return nil, err
		}
		if err := s.ensureSlugAvailable(newSlug); err != nil {
			return nil, err
		}
		experience.Slug = newSlug
	}
	if req.Company != "" {
		experience.Company = req.Company
	}
	if req.Role != "" {
		experience.Role = req.Role
	}
	if err := s.apply(experience, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(experience); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi cập nhật kinh nghiệm làm việc")
	}

	s.cache.Invalidator.OnExperienceChanged(ctx, experience)
	if previous.Slug != experience.Slug {
		s.cache.Invalidator.OnExperienceChanged(ctx, &previous)
	}
	return experience, nil
}

// Delete deletes an experience
func (s *ExperienceService) Delete(ctx context.Context, slug string) error {
	experience, err := s.repo.GetBySlug(slug)
	if err != nil {
		return lookupError(err, "Không tìm thấy kinh nghiệm làm việc", "Lỗi khi lấy kinh nghiệm làm việc", map[string]interface{}{
			"slug": slug,
		})
	}

	if err := s.repo.Delete(experience.ID); err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi xóa kinh nghiệm làm việc")
	}

	s.cache.Invalidator.OnExperienceChanged(ctx, experience)
	return nil
}

// List lists all experiences (cached)
func (s *ExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	return cached(ctx, s.cache, s.cache.Keys.Experiences(), true, func() ([]models.Experience, error) {
		experiences, err := s.repo.ListAll()
		if err != nil {
			return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách kinh nghiệm làm việc")
		}
		if experiences == nil {
			experiences = []models.Experience{}
		}
		return experiences, nil
	})
}

// GetBySlug gets an experience by slug (cached)
func (s *ExperienceService) GetBySlug(ctx context.Context, slug string) (*models.Experience, error) {
	return cached(ctx, s.cache, s.cache.Keys.ExperienceDetail(slug), true, func() (*models.Experience, error) {
		experience, err := s.repo.GetBySlug(slug)
		if err != nil {
			return nil, lookupError(err, "Không tìm thấy kinh nghiệm làm việc", "Lỗi khi lấy kinh nghiệm làm việc", map[string]interface{}{
				"slug": slug,
			})
		}
		return experience, nil
	})
}

func (s *ExperienceService) ensureSlugAvailable(slug string) error {
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

// apply copies request fields and checks the date range.
// Current = true xóa EndDate
func (s *ExperienceService) apply(experience *models.Experience, req ExperienceRequest) error {
	if req.Location != "" {
		experience.Location = req.Location
	}
	if req.Description != "" {
		experience.Description = req.Description
	}
	if req.StartDate != nil {
		experience.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		experience.EndDate = req.EndDate
	}
	if req.Current != nil {
		experience.Current = *req.Current
	}
	if req.SortOrder != nil {
		experience.SortOrder = *req.SortOrder
	}
	if experience.Current {
		experience.EndDate = nil
	}

	if experience.EndDate != nil && experience.EndDate.Before(experience.StartDate) {
		return goerrorkit.NewValidationError("Ngày kết thúc phải sau ngày bắt đầu", map[string]interface{}{
			"field":      "end_date",
			"start_date": experience.StartDate,
			"end_date":   experience.EndDate,
		})
	}
	return nil
}
