package models

import (
	"time"
)

// ProjectType là danh mục của project, dùng làm bộ lọc trên trang danh sách
type ProjectType string

const (
	ProjectTypeWebApp      ProjectType = "Web App"
	ProjectTypeDataScience ProjectType = "Data Science"
	ProjectTypeAI          ProjectType = "AI"
	ProjectTypeMobile      ProjectType = "Mobile"
)

// AllProjectTypes liệt kê các type hợp lệ theo thứ tự hiển thị
var AllProjectTypes = []ProjectType{
	ProjectTypeWebApp,
	ProjectTypeDataScience,
	ProjectTypeAI,
	ProjectTypeMobile,
}

// IsValid reports whether t is one of the known project types.
// Type rỗng (chưa phân loại) cũng được coi là hợp lệ
func (t ProjectType) IsValid() bool {
	if t == "" {
		return true
	}
	for _, known := range AllProjectTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Project represents a portfolio project
type Project struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string      `gorm:"type:varchar(150);uniqueIndex;not null" json:"slug"`
	Title       string      `gorm:"type:varchar(200);not null" json:"title"`
	Summary     string      `gorm:"type:varchar(500)" json:"summary"`
	Description string      `gorm:"type:text" json:"description"`
	Type        ProjectType `gorm:"type:varchar(50);index" json:"type"`
	TechStack   string      `gorm:"type:varchar(500)" json:"tech_stack"` // Danh sách công nghệ, phân tách bằng dấu phẩy
	RepoURL     string      `gorm:"type:varchar(500)" json:"repo_url"`
	DemoURL     string      `gorm:"type:varchar(500)" json:"demo_url"`
	ImageURL    string      `gorm:"type:varchar(500)" json:"image_url"`
	Featured    bool        `gorm:"default:false;index" json:"featured"`
	SortOrder   int         `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName specifies the table name
func (Project) TableName() string {
	return "projects"
}
