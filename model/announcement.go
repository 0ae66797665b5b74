package model

import (
	"time"

	"gorm.io/gorm"
)

// Announcement represents a short notice shown on the public site
type Announcement struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Category    string         `gorm:"type:varchar(100)" json:"category"`
	Priority    string         `gorm:"type:varchar(20);default:'normal'" json:"priority"` // low, normal, high
	Icon        string         `gorm:"type:varchar(100)" json:"icon"`
	IsPublished bool           `gorm:"default:false" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
