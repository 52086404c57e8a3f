package service

import (
	"context"
	"strings"
	"time"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/cache"
	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/models"
	"github.com/techmaster-vietnam/portfolio/utils"
)

// CertificateService handles certificate business logic
type CertificateService struct {
	repo  core.CertificateRepositoryInterface
	cache *ContentCache
}

// NewCertificateService creates a new certificate service
func NewCertificateService(repo core.CertificateRepositoryInterface, cc *ContentCache) *CertificateService {
	return &CertificateService{
		repo:  repo,
		cache: cc,
	}
}

// CertificateRequest represents create/update certificate request
type CertificateRequest struct {
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	Category      *string    `json:"category"`
	IssuedAt      *time.Time `json:"issued_at"`
	CredentialURL string     `json:"credential_url"`
	ImageURL      string     `json:"image_url"`
}

// Create creates a new certificate
func (s *CertificateService) Create(ctx context.Context, req CertificateRequest) (*models.Certificate, error) {
	if err := utils.ValidateRequired("title", req.Title, "Tiêu đề là bắt buộc"); err != nil {
		return nil, err
	}

	certificate := &models.Certificate{Title: req.Title}
	if err := s.apply(certificate, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(certificate); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi tạo certificate")
	}

	s.cache.Invalidator.OnCertificateChanged(ctx, certificate)
	return certificate, nil
}

// Update updates a certificate
func (s *CertificateService) Update(ctx context.Context, id uint, req CertificateRequest) (*models.Certificate, error) {
	certificate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		certificate.Title = req.Title
	}
	if err := s.apply(certificate, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(certificate); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi cập nhật certificate")
	}

	s.cache.Invalidator.OnCertificateChanged(ctx, certificate)
	return certificate, nil
}

// Delete deletes a certificate
func (s *CertificateService) Delete(ctx context.Context, id uint) error {
	certificate, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(certificate.ID); err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi xóa certificate")
	}

	s.cache.Invalidator.OnCertificateChanged(ctx, certificate)
	return nil
}

// GetByID gets a certificate by ID. Không có cache chi tiết cho certificate
func (s *CertificateService) GetByID(id uint) (*models.Certificate, error) {
	certificate, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, "Không tìm thấy certificate", "Lỗi khi lấy certificate", map[string]interface{}{
			"certificate_id": id,
		})
	}
	return certificate, nil
}

// List lists certificates by category with pagination
func (s *CertificateService) List(ctx context.Context, categoryFilter string, page, perPage int) (Page[models.Certificate], error) {
	filter := strings.TrimSpace(categoryFilter)
	if filter == "" {
		filter = cache.FilterAll
	}

	category := models.CertificateCategory("")
	if filter != cache.FilterAll {
		category = models.CertificateCategory(filter)
		if !category.IsValid() {
			return Page[models.Certificate]{}, goerrorkit.NewValidationError("Category không hợp lệ", map[string]interface{}{
				"field":    "category",
				"received": categoryFilter,
				"allowed":  cache.CertificateCategoryFilters(),
			})
		}
	}

	page = NormalizePage(page)
	perPage = NormalizePerPage(perPage)

	key := s.cache.Keys.CertificatesPage(filter, page, perPage)
	return cached(ctx, s.cache, key, cache.IsCacheablePage(page, perPage), func() (Page[models.Certificate], error) {
		certificates, total, err := s.repo.List(category, offsetOf(page, perPage), perPage)
		if err != nil {
			return Page[models.Certificate]{}, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách certificate")
		}
		return NewPage(certificates, total, page, perPage), nil
	})
}

// Initial lists the landing-page certificates
func (s *CertificateService) Initial(ctx context.Context) ([]models.Certificate, error) {
	return cached(ctx, s.cache, s.cache.Keys.CertificatesInitial(), true, func() ([]models.Certificate, error) {
		certificates, err := s.repo.Initial(InitialCertificatesLimit)
		if err != nil {
			return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách certificate")
		}
		if certificates == nil {
			certificates = []models.Certificate{}
		}
		return certificates, nil
	})
}

func (s *CertificateService) apply(certificate *models.Certificate, req CertificateRequest) error {
	if err := firstError(
		utils.ValidateOptionalURL("credential_url", req.CredentialURL),
		utils.ValidateOptionalURL("image_url", req.ImageURL),
	); err != nil {
		return err
	}

	if req.Category != nil {
		category := models.CertificateCategory(strings.TrimSpace(*req.Category))
		if !category.IsValid() {
			return goerrorkit.NewValidationError("Category không hợp lệ", map[string]interface{}{
				"field":    "category",
				"received": *req.Category,
				"allowed":  models.AllCertificateCategories,
			})
		}
		certificate.Category = category
	}
	if req.Issuer != "" {
		certificate.Issuer = req.Issuer
	}
	if req.IssuedAt != nil {
		certificate.IssuedAt = req.IssuedAt
	}
	if req.CredentialURL != "" {
		certificate.CredentialURL = req.CredentialURL
	}
	if req.ImageURL != "" {
		certificate.ImageURL = req.ImageURL
	}
	return nil
}
