package model

import (
	"time"

	"gorm.io/gorm"
)

// News represents a news article on the public site
type News struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Category     string         `gorm:"type:varchar(100)" json:"category"`
	Excerpt      string         `gorm:"type:text" json:"excerpt"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	FullContent  string         `gorm:"type:text" json:"full_content"`
	ExternalLink string         `gorm:"type:varchar(512)" json:"external_link"`
	ImageURL     string         `gorm:"type:varchar(512)" json:"image_url"`
	IsPublished  bool           `gorm:"default:false" json:"is_published"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for News
func (News) TableName() string {
	return "news"
}
