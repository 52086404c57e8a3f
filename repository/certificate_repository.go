package repository

import (
	"github.com/techmaster-vietnam/portfolio/models"
	"gorm.io/gorm"
)

// CertificateRepository handles certificate database operations
type CertificateRepository struct {
	db *gorm.DB
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Create creates a new certificate
func (r *CertificateRepository) Create(certificate *models.Certificate) error {
	return r.db.Create(certificate).Error
}

// GetByID gets a certificate by ID
func (r *CertificateRepository) GetByID(id uint) (*models.Certificate, error) {
	var certificate models.Certificate
	err := r.db.Where("id = ?", id).First(&certificate).Error
	return &certificate, err
}

// Update updates a certificate
func (r *CertificateRepository) Update(certificate *models.Certificate) error {
	return r.db.Save(certificate).Error
}

// Delete deletes a certificate
func (r *CertificateRepository) Delete(id uint) error {
	return r.db.Delete(&models.Certificate{}, id).Error
}

// List lists certificates with optional category filter and pagination
func (r *CertificateRepository) List(category models.CertificateCategory, offset, limit int) ([]models.Certificate, int64, error) {
	var certificates []models.Certificate
	var total int64

	query := r.db.Model(&models.Certificate{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("issued_at DESC NULLS LAST, created_at DESC").Offset(offset).Limit(limit).Find(&certificates).Error
	return certificates, total, err
}

// Initial lists the first certificates shown on the landing page
func (r *CertificateRepository) Initial(limit int) ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := r.db.Order("issued_at DESC NULLS LAST, created_at DESC").Limit(limit).Find(&certificates).Error
	return certificates, err
}
