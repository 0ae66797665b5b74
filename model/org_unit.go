package model

import (
	"time"

	"gorm.io/gorm"
)

// OrgUnit represents one node of the organizational structure. Units form a
// shallow tree: a unit's parent must sit at a strictly lower level.
type OrgUnit struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Position  string         `gorm:"not null" json:"position"`
	Level     int            `gorm:"not null;index" json:"level"`
	ParentID  *uint          `gorm:"index" json:"parent_id"`
	ImageURL  string         `gorm:"type:varchar(512)" json:"image_url"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Parent   *OrgUnit  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []OrgUnit `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

// TableName specifies the table name for OrgUnit
func (OrgUnit) TableName() string {
	return "organizational_structure"
}
