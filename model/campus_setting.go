package model

import (
	"time"

	"gorm.io/datatypes"
)

// Known settings section keys. Each section is one row whose value is the
// full JSON document for that section.
const (
	SettingHeroSection   = "hero_section"
	SettingContactInfo   = "contact_info"
	SettingStats         = "stats"
	SettingVisionMission = "vision_mission"
)

// CampusSetting holds one named configuration section for the public site.
// There is at most one row per key; writes replace the whole document, so any
// merging of fields must happen before the write.
type CampusSetting struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Key         string            `gorm:"column:setting_key;uniqueIndex;not null" json:"setting_key"`
	Value       datatypes.JSONMap `gorm:"column:setting_value;not null" json:"setting_value"`
	Description string            `gorm:"type:text" json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TableName specifies the table name for CampusSetting
func (CampusSetting) TableName() string {
	return "campus_settings"
}
