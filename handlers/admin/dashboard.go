package admin

import (
	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardStats holds per-table row counts for the admin landing screen
type DashboardStats struct {
	Programs      int64 `json:"programs"`
	News          int64 `json:"news"`
	Gallery       int64 `json:"gallery"`
	Announcements int64 `json:"announcements"`
	Users         int64 `json:"users"`
	Downloads     int64 `json:"downloads"`
	Calendar      int64 `json:"calendar"`
	Lecturers     int64 `json:"lecturers"`
	OrgUnits      int64 `json:"org_units"`
}

// GetDashboard retrieves row counts for every content table
// GET /admin/dashboard
func GetDashboard(c *fiber.Ctx, db *gorm.DB) error {
	var stats DashboardStats

	db.Model(&model.Program{}).Count(&stats.Programs)
	db.Model(&model.News{}).Count(&stats.News)
	db.Model(&model.GalleryItem{}).Count(&stats.Gallery)
	db.Model(&model.Announcement{}).Count(&stats.Announcements)
	db.Model(&model.User{}).Count(&stats.Users)
	db.Model(&model.Download{}).Count(&stats.Downloads)
	db.Model(&model.CalendarEvent{}).Count(&stats.Calendar)
	db.Model(&model.Lecturer{}).Count(&stats.Lecturers)
	db.Model(&model.OrgUnit{}).Count(&stats.OrgUnits)

	return response.SuccessWithMessage(c, "Dashboard statistics retrieved successfully", stats)
}
