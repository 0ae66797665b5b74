package model

import (
	"time"

	"gorm.io/gorm"
)

// Lecturer represents a faculty member profile
type Lecturer struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Field      string         `gorm:"not null" json:"field"`
	Education  string         `gorm:"type:text;not null" json:"education"`
	Experience string         `gorm:"type:text" json:"experience"`
	Email      string         `gorm:"type:varchar(255)" json:"email"`
	Phone      string         `gorm:"type:varchar(50)" json:"phone"`
	ImageURL   string         `gorm:"type:varchar(512)" json:"image_url"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
