package model

import (
	"time"

	"gorm.io/gorm"
)

// Program represents a study program offered by the institution
type Program struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null;uniqueIndex" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	Accreditation string         `gorm:"type:varchar(50)" json:"accreditation"`
	ImageURL      string         `gorm:"type:varchar(512)" json:"image_url"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
