package database

import (
	"log"
	"time"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/models"
	"gorm.io/gorm"
)

// Seed inserts sample content using FirstOrCreate, chạy lại nhiều lần không tạo bản ghi trùng
func Seed(db *gorm.DB) error {
	if err := seedProjects(db); err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to seed projects").WithData(map[string]interface{}{
			"operation": "seed_projects",
		})
	}
	if err := seedExperiences(db); err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to seed experiences").WithData(map[string]interface{}{
			"operation": "seed_experiences",
		})
	}
	if err := seedCertificates(db); err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to seed certificates").WithData(map[string]interface{}{
			"operation": "seed_certificates",
		})
	}
	return nil
}

func seedProjects(db *gorm.DB) error {
	projects := []models.Project{
		{
			Slug:      "portfolio-site",
			Title:     "Portfolio Site",
			Summary:   "Trang portfolio cá nhân với trang admin quản lý nội dung",
			Type:      models.ProjectTypeWebApp,
			TechStack: "Go, Fiber, PostgreSQL",
			Featured:  true,
		},
		{
			Slug:      "sales-forecasting",
			Title:     "Sales Forecasting",
			Summary:   "Dự báo doanh số theo tuần",
			Type:      models.ProjectTypeDataScience,
			TechStack: "Python, pandas",
		},
	}

	for i := range projects {
		result := db.Where("slug = ?", projects[i].Slug).FirstOrCreate(&projects[i])
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			log.Printf("Created project: %s\n", projects[i].Slug)
		}
	}
	return nil
}

func seedExperiences(db *gorm.DB) error {
	experience := models.Experience{
		Slug:      "techmaster-backend-engineer",
		Company:   "Techmaster",
		Role:      "Backend Engineer",
		StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Current:   true,
	}

	result := db.Where("slug = ?", experience.Slug).FirstOrCreate(&experience)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Created experience: %s\n", experience.Slug)
	}
	return nil
}

func seedCertificates(db *gorm.DB) error {
	certificate := models.Certificate{
		Title:    "Go Developer",
		Issuer:   "Techmaster",
		Category: models.CertificateCategoryLearning,
	}

	result := db.Where("title = ? AND issuer = ?", certificate.Title, certificate.Issuer).FirstOrCreate(&certificate)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Created certificate: %s\n", certificate.Title)
	}
	return nil
}
