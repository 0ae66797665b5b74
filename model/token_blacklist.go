package model

import (
	"time"

	"gorm.io/gorm"
)

// JWTTokenBlacklist stores revoked token IDs until their natural expiry
type JWTTokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	JTI       string         `gorm:"column:jti;uniqueIndex;not null;type:varchar(64)" json:"jti"`
	UserID    uint           `gorm:"index" json:"user_id"`
	Reason    string         `gorm:"type:varchar(100)" json:"reason"` // logout, role_change, manual_revoke
	ExpiresAt time.Time      `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for JWTTokenBlacklist
func (JWTTokenBlacklist) TableName() string {
	return "jwt_token_blacklist"
}
