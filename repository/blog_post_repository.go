package repository

import (
	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/models"
	"gorm.io/gorm"
)

// BlogPostRepository handles blog post database operations
type BlogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository creates a new blog post repository
func NewBlogPostRepository(db *gorm.DB) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

// Create creates a new blog post
func (r *BlogPostRepository) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// GetBySlug gets a blog post by slug.
// Project không được preload: cache blogs:detail chỉ bị xóa khi blog post đổi
func (r *BlogPostRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("slug = ?", slug).First(&post).Error
	return &post, err
}

// Update updates a blog post
func (r *BlogPostRepository) Update(post *models.BlogPost) error {
	return r.db.Omit("Project").Save(post).Error
}

// Delete deletes a blog post
func (r *BlogPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}

// List lists blog posts with filter and pagination
func (r *BlogPostRepository) List(filter core.BlogPostFilter, offset, limit int) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	query := r.db.Model(&models.BlogPost{})
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("published_at DESC NULLS LAST, created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

// Recent lists the latest published posts
func (r *BlogPostRepository) Recent(limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Where("published = ?", true).
		Order("published_at DESC NULLS LAST, created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}
