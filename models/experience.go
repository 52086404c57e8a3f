package models

import (
	"time"
)

// Experience represents a work experience entry
type Experience struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"slug"`
	Company     string     `gorm:"type:varchar(200);not null" json:"company"`
	Role        string     `gorm:"type:varchar(200);not null" json:"role"`
	Location    string     `gorm:"type:varchar(200)" json:"location"`
	Description string     `gorm:"type:text" json:"description"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Current     bool       `gorm:"default:false" json:"current"`
	SortOrder   int        `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name
func (Experience) TableName() string {
	return "experiences"
}
