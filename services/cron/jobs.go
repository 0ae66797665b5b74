package cron

import (
	"context"
	"log"
	"time"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/auth"
)

// AuditLogRetention is how long admin audit entries are kept
const AuditLogRetention = 180 * 24 * time.Hour

// CleanupExpiredBlacklist removes blacklist rows whose tokens already expired
func (m *CronManager) CleanupExpiredBlacklist() {
	blacklist := auth.NewBlacklistService(m.db)

	removed, err := blacklist.CleanupExpiredTokens(context.Background())
	if err != nil {
		log.Println("Failed to clean up token blacklist:", err)
		return
	}
	if removed > 0 {
		log.Printf("Removed %d expired blacklist entries", removed)
	}
}

// TrimAuditLogs deletes audit entries older than the retention window
func (m *CronManager) TrimAuditLogs() {
	cutoff := time.Now().Add(-AuditLogRetention)

	result := m.db.Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&model.AdminAuditLog{})
	if result.Error != nil {
		log.Println("Failed to trim audit logs:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Trimmed %d audit log entries", result.RowsAffected)
	}
}
