package model

import (
	"time"

	"gorm.io/gorm"
)

// GalleryItem represents one image in the campus gallery
type GalleryItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Category    string         `gorm:"type:varchar(100)" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"type:varchar(512);not null" json:"image_url"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GalleryItem
func (GalleryItem) TableName() string {
	return "gallery"
}
