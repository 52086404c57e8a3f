package models

import (
	"time"
)

// CertificateCategory phân loại certificate trên trang danh sách
type CertificateCategory string

const (
	CertificateCategoryLearning    CertificateCategory = "learning"
	CertificateCategoryCompetition CertificateCategory = "competition"
)

// AllCertificateCategories liệt kê các category hợp lệ
var AllCertificateCategories = []CertificateCategory{
	CertificateCategoryLearning,
	CertificateCategoryCompetition,
}

// IsValid reports whether c is a known category or unset
func (c CertificateCategory) IsValid() bool {
	return c == "" || c == CertificateCategoryLearning || c == CertificateCategoryCompetition
}

// Certificate represents a certificate or award.
// Certificate không có slug nên không có cache chi tiết theo từng bản ghi
type Certificate struct {
	ID            uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string              `gorm:"type:varchar(200);not null" json:"title"`
	Issuer        string              `gorm:"type:varchar(200)" json:"issuer"`
	Category      CertificateCategory `gorm:"type:varchar(30);index" json:"category"`
	IssuedAt      *time.Time          `json:"issued_at,omitempty"`
	CredentialURL string              `gorm:"type:varchar(500)" json:"credential_url"`
	ImageURL      string              `gorm:"type:varchar(500)" json:"image_url"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// TableName specifies the table name
func (Certificate) TableName() string {
	return "certificates"
}
