package models

import (
	"time"
)

// BlogPost represents a blog post, optionally attached to a project
type BlogPost struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"slug"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Excerpt     string     `gorm:"type:varchar(500)" json:"excerpt"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	CoverURL    string     `gorm:"type:varchar(500)" json:"cover_url"`
	ProjectID   *uint      `gorm:"index" json:"project_id,omitempty"`
	Published   bool       `gorm:"default:false;index" json:"published"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relationships
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL" json:"project,omitempty"`
}

// TableName specifies the table name
func (BlogPost) TableName() string {
	return "blog_posts"
}
