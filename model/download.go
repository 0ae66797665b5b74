package model

import (
	"time"

	"gorm.io/gorm"
)

// Download represents a downloadable document (forms, guides, regulations)
type Download struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"not null" json:"title"`
	Category      string         `gorm:"type:varchar(100);not null;default:'general'" json:"category"`
	Description   string         `gorm:"type:text" json:"description"`
	FileURL       string         `gorm:"type:varchar(512);not null" json:"file_url"`
	FileType      string         `gorm:"type:varchar(50)" json:"file_type"`
	FileSize      string         `gorm:"type:varchar(50)" json:"file_size"`
	DownloadCount int64          `gorm:"default:0" json:"download_count"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
