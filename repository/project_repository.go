package repository

import (
	"github.com/techmaster-vietnam/portfolio/models"
	"gorm.io/gorm"
)

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetBySlug gets a project by slug
func (r *ProjectRepository) GetBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("slug = ?", slug).First(&project).Error
	return &project, err
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project
func (r *ProjectRepository) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// List lists projects with optional type filter and pagination
// Featured projects đứng trước, sau đó theo sort_order và ngày tạo mới nhất
func (r *ProjectRepository) List(projectType models.ProjectType, offset, limit int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	query := r.db.Model(&models.Project{})
	if projectType != "" {
		query = query.Where("type = ?", projectType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("featured DESC, sort_order ASC, created_at DESC").Offset(offset).Limit(limit).Find(&projects).Error
	return projects, total, err
}

// Initial lists the first projects shown on the landing page
func (r *ProjectRepository) Initial(limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("featured DESC, sort_order ASC, created_at DESC").Limit(limit).Find(&projects).Error
	return projects, err
}

// DistinctTypes lists project types that currently have at least one project
func (r *ProjectRepository) DistinctTypes() ([]models.ProjectType, error) {
	var types []models.ProjectType
	err := r.db.Model(&models.Project{}).
		Where("type <> ''").
		Distinct("type").
		Order("type ASC").
		Pluck("type", &types).Error
	return types, err
}
