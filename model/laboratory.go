package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Laboratory represents a campus laboratory and its facilities
type Laboratory struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;uniqueIndex" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Facilities  pq.StringArray `gorm:"type:text[]" json:"facilities"`
	Capacity    int            `gorm:"default:0" json:"capacity"`
	IsAvailable bool           `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Laboratory
func (Laboratory) TableName() string {
	return "laboratories"
}
