package model

import (
	"time"

	"gorm.io/gorm"
)

// User roles. RoleUser is the default for self-registered accounts; only
// RoleAdmin and RoleSuperAdmin may enter the admin surface.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// User represents a registered account and its profile attributes
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // Never expose password in JSON
	FullName     string         `gorm:"not null" json:"full_name"`
	Role         string         `gorm:"type:varchar(20);default:'user'" json:"role"` // user, admin, super_admin
	TokenVersion int            `gorm:"default:0" json:"-"`                          // Increment to invalidate all user tokens

	// Relationships
	AuditLogs      []AdminAuditLog     `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"-"`
	TokenBlacklist []JWTTokenBlacklist `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsAdmin reports whether the user may enter the admin area
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// ValidRole reports whether role is one of the known role values
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
