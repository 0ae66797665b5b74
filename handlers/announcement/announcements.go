package announcement

import (
	"strconv"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/akademika/campus-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AnnouncementHandler handles announcement requests
type AnnouncementHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(db *gorm.DB) *AnnouncementHandler {
	return &AnnouncementHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateAnnouncementRequest represents the request body for creating an announcement
type CreateAnnouncementRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Content     string `json:"content" validate:"required"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low normal high"`
	Icon        string `json:"icon" validate:"omitempty,max=100"`
	IsPublished *bool  `json:"is_published" validate:"omitempty"`
}

// UpdateAnnouncementRequest represents the request body for updating an announcement
type UpdateAnnouncementRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=255"`
	Content     string `json:"content" validate:"omitempty"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low normal high"`
	Icon        string `json:"icon" validate:"omitempty,max=100"`
	IsPublished *bool  `json:"is_published" validate:"omitempty"`
}

// ListAnnouncements handles GET /api/v1/announcements
// High-priority notices come first so the public banner can show them on top.
func (h *AnnouncementHandler) ListAnnouncements(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	category := c.Query("category", "")
	priority := c.Query("priority", "")

	query := h.db.Model(&model.Announcement{})

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if priority != "" {
		query = query.Where("priority = ?", priority)
	}

	user, _ := middleware.GetUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("is_published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count announcements")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var announcements []model.Announcement
	if err := query.
		Order("CASE priority WHEN 'high' THEN 0 WHEN 'normal' THEN 1 ELSE 2 END, created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&announcements).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch announcements")
	}

	return response.Paginated(c, announcements, pagination)
}

// GetAnnouncement handles GET /api/v1/announcements/:id
func (h *AnnouncementHandler) GetAnnouncement(c *fiber.Ctx) error {
	id := c.Params("id")

	var announcement model.Announcement
	if err := h.db.First(&announcement, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Announcement not found")
		}
		return response.InternalServerError(c, "Failed to fetch announcement")
	}

	user, _ := middleware.GetUser(c)
	if !announcement.IsPublished && (user == nil || !user.IsAdmin()) {
		return response.NotFound(c, "Announcement not found")
	}

	return response.Success(c, announcement)
}

// CreateAnnouncement handles POST /api/v1/admin/announcements
func (h *AnnouncementHandler) CreateAnnouncement(c *fiber.Ctx) error {
	var req CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	announcement := model.Announcement{
		Title:    validation.SanitizeString(req.Title),
		Content:  req.Content,
		Category: validation.SanitizeString(req.Category),
		Priority: req.Priority,
		Icon:     req.Icon,
	}
	if announcement.Priority == "" {
		announcement.Priority = "normal"
	}
	if req.IsPublished != nil {
		announcement.IsPublished = *req.IsPublished
	}

	if err := h.db.Create(&announcement).Error; err != nil {
		return response.InternalServerError(c, "Failed to create announcement")
	}

	return response.Created(c, "Announcement created successfully", announcement)
}

// UpdateAnnouncement handles PUT /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) UpdateAnnouncement(c *fiber.Ctx) error {
	id := c.Params("id")

	var announcement model.Announcement
	if err := h.db.First(&announcement, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Announcement not found")
		}
		return response.InternalServerError(c, "Failed to fetch announcement")
	}

	var req UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Title != "" {
		announcement.Title = validation.SanitizeString(req.Title)
	}
	if req.Content != "" {
		announcement.Content = req.Content
	}
	if req.Category != "" {
		announcement.Category = validation.SanitizeString(req.Category)
	}
	if req.Priority != "" {
		announcement.Priority = req.Priority
	}
	if req.Icon != "" {
		announcement.Icon = req.Icon
	}
	if req.IsPublished != nil {
		announcement.IsPublished = *req.IsPublished
	}

	if err := h.db.Save(&announcement).Error; err != nil {
		return response.InternalServerError(c, "Failed to update announcement")
	}

	return response.SuccessWithMessage(c, "Announcement updated successfully", announcement)
}

// ToggleAnnouncement handles PATCH /api/v1/admin/announcements/:id/toggle
// Flips the published flag.
func (h *AnnouncementHandler) ToggleAnnouncement(c *fiber.Ctx) error {
	id := c.Params("id")

	var announcement model.Announcement
	if err := h.db.First(&announcement, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Announcement not found")
		}
		return response.InternalServerError(c, "Failed to fetch announcement")
	}

	announcement.IsPublished = !announcement.IsPublished
	if err := h.db.Save(&announcement).Error; err != nil {
		return response.InternalServerError(c, "Failed to update announcement")
	}

	return response.SuccessWithMessage(c, "Announcement status updated", announcement)
}

// DeleteAnnouncement handles DELETE /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) DeleteAnnouncement(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.Announcement{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete announcement")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Announcement not found")
	}

	return response.SuccessWithMessage(c, "Announcement deleted successfully", fiber.Map{"id": id})
}
