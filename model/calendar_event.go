package model

import (
	"time"

	"gorm.io/gorm"
)

// CalendarEvent represents one entry in the academic calendar
type CalendarEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	EventType   string         `gorm:"type:varchar(50);default:'academic'" json:"event_type"` // academic, exam, holiday, registration
	StartDate   time.Time      `gorm:"not null" json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for CalendarEvent
func (CalendarEvent) TableName() string {
	return "academic_calendar"
}
