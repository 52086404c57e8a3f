package core

import (
	"context"

	"github.com/techmaster-vietnam/portfolio/models"
)

// ProjectRepositoryInterface định nghĩa interface cho Project Repository
// Cho phép mock repository trong tests
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetBySlug(slug string) (*models.Project, error)
	Update(project *models.Project) error
	Delete(id uint) error
	// List trả về projects theo type (rỗng = tất cả) cùng tổng số bản ghi khớp filter
	List(projectType models.ProjectType, offset, limit int) ([]models.Project, int64, error)
	Initial(limit int) ([]models.Project, error)
	DistinctTypes() ([]models.ProjectType, error)
}

// BlogPostRepositoryInterface định nghĩa interface cho BlogPost Repository
type BlogPostRepositoryInterface interface {
	Create(post *models.BlogPost) error
	GetBySlug(slug string) (*models.BlogPost, error)
	Update(post *models.BlogPost) error
	Delete(id uint) error
	List(filter BlogPostFilter, offset, limit int) ([]models.BlogPost, int64, error)
	Recent(limit int) ([]models.BlogPost, error)
}

// BlogPostFilter represents filter parameters for listing blog posts
type BlogPostFilter struct {
	ProjectID     *uint
	PublishedOnly bool
}

// CertificateRepositoryInterface định nghĩa interface cho Certificate Repository
type CertificateRepositoryInterface interface {
	Create(certificate *models.Certificate) error
	GetByID(id uint) (*models.Certificate, error)
	Update(certificate *models.Certificate) error
	Delete(id uint) error
	List(category models.CertificateCategory, offset, limit int) ([]models.Certificate, int64, error)
	Initial(limit int) ([]models.Certificate, error)
}

// ExperienceRepositoryInterface định nghĩa interface cho Experience Repository
type ExperienceRepositoryInterface interface {
	Create(experience *models.Experience) error
	GetBySlug(slug string) (*models.Experience, error)
	Update(experience *models.Experience) error
	Delete(id uint) error
	ListAll() ([]models.Experience, error)
}

// NotificationSender là interface để gửi nội dung form liên hệ tới chủ site
// Người dùng có thể implement interface này để tích hợp với hệ thống email của họ
type NotificationSender interface {
	SendContactMessage(ctx context.Context, msg models.ContactMessage) error
}
