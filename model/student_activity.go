package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// StudentActivity represents a student activity category (clubs, competitions)
type StudentActivity struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Category  string         `gorm:"not null;uniqueIndex" json:"category"`
	Icon      string         `gorm:"type:varchar(100)" json:"icon"`
	Items     pq.StringArray `gorm:"type:text[]" json:"items"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for StudentActivity
func (StudentActivity) TableName() string {
	return "student_activities"
}
