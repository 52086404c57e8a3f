package repository

import (
	"github.com/techmaster-vietnam/portfolio/models"
	"gorm.io/gorm"
)

// ExperienceRepository handles experience database operations
type ExperienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new experience repository
func NewExperienceRepository(db *gorm.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

// Create creates a new experience
func (r *ExperienceRepository) Create(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// GetBySlug gets an experience by slug
func (r *ExperienceRepository) GetBySlug(slug string) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.Where("slug = ?", slug).First(&experience).Error
	return &experience, err
}

// Update updates an experience
func (r *ExperienceRepository) Update(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

// Delete deletes an experience
func (r *ExperienceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Experience{}, id).Error
}

// ListAll lists every experience, công việc hiện tại và mới nhất lên đầu
func (r *ExperienceRepository) ListAll() ([]models.Experience, error) {
	var experiences []models.Experience
	err := r.db.Order("current DESC, sort_order ASC, start_date DESC").Find(&experiences).Error
	return experiences, err
}
