package admin

import (
	"strconv"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListAuditLogs retrieves the admin action trail, newest first
// GET /admin/audit-logs
func ListAuditLogs(c *fiber.Ctx, db *gorm.DB) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	action := c.Query("action", "")
	resource := c.Query("resource", "")

	query := db.Model(&model.AdminAuditLog{})
	if action != "" {
		query = query.Where("action = ?", action)
	}
	if resource != "" {
		query = query.Where("resource = ?", resource)
	}
	if adminID := c.Query("admin_id", ""); adminID != "" {
		query = query.Where("admin_id = ?", adminID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count audit logs")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var logs []model.AdminAuditLog
	if err := query.Preload("Admin").
		Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch audit logs")
	}

	return response.Paginated(c, logs, pagination)
}
