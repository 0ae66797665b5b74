package download

import (
	"strconv"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/akademika/campus-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DownloadHandler handles downloadable document requests
type DownloadHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(db *gorm.DB) *DownloadHandler {
	return &DownloadHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateDownloadRequest represents the request body for creating a download
type CreateDownloadRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	FileURL     string `json:"file_url" validate:"required,url,max=512"`
	FileType    string `json:"file_type" validate:"omitempty,max=50"`
	FileSize    string `json:"file_size" validate:"omitempty,max=50"`
}

// UpdateDownloadRequest represents the request body for updating a download
type UpdateDownloadRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=255"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	FileURL     string `json:"file_url" validate:"omitempty,url,max=512"`
	FileType    string `json:"file_type" validate:"omitempty,max=50"`
	FileSize    string `json:"file_size" validate:"omitempty,max=50"`
	IsActive    *bool  `json:"is_active" validate:"omitempty"`
}

// ListDownloads handles GET /api/v1/downloads
func (h *DownloadHandler) ListDownloads(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	category := c.Query("category", "")
	search := c.Query("search", "")

	query := h.db.Model(&model.Download{})

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	user, _ := middleware.GetUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count downloads")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var downloads []model.Download
	if err := query.Order("category ASC, title ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&downloads).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch downloads")
	}

	return response.Paginated(c, downloads, pagination)
}

// GetDownload handles GET /api/v1/downloads/:id
func (h *DownloadHandler) GetDownload(c *fiber.Ctx) error {
	id := c.Params("id")

	var download model.Download
	if err := h.db.First(&download, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Download not found")
		}
		return response.InternalServerError(c, "Failed to fetch download")
	}

	user, _ := middleware.GetUser(c)
	if !download.IsActive && (user == nil || !user.IsAdmin()) {
		return response.NotFound(c, "Download not found")
	}

	return response.Success(c, download)
}

// RecordDownload handles POST /api/v1/downloads/:id/download
// Increments the download counter and returns the file URL. The increment runs
// in SQL so concurrent requests don't lose counts.
func (h *DownloadHandler) RecordDownload(c *fiber.Ctx) error {
	id := c.Params("id")

	var download model.Download
	if err := h.db.First(&download, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Download not found")
		}
		return response.InternalServerError(c, "Failed to fetch download")
	}

	if !download.IsActive {
		return response.NotFound(c, "Download not found")
	}

	if err := h.db.Model(&download).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error; err != nil {
		return response.InternalServerError(c, "Failed to record download")
	}

	return response.Success(c, fiber.Map{
		"file_url":       download.FileURL,
		"download_count": download.DownloadCount + 1,
	})
}

// CreateDownload handles POST /api/v1/admin/downloads
func (h *DownloadHandler) CreateDownload(c *fiber.Ctx) error {
	var req CreateDownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var existing model.Download
	if err := h.db.Where("title = ?", req.Title).First(&existing).Error; err == nil {
		return response.Conflict(c, "A download with this title already exists")
	}

	download := model.Download{
		Title:       validation.SanitizeString(req.Title),
		Category:    validation.SanitizeString(req.Category),
		Description: validation.SanitizeString(req.Description),
		FileURL:     req.FileURL,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		IsActive:    true,
	}
	if download.Category == "" {
		download.Category = "general"
	}

	if err := h.db.Create(&download).Error; err != nil {
		return response.InternalServerError(c, "Failed to create download")
	}

	return response.Created(c, "Download created successfully", download)
}

// UpdateDownload handles PUT /api/v1/admin/downloads/:id
func (h *DownloadHandler) UpdateDownload(c *fiber.Ctx) error {
	id := c.Params("id")

	var download model.Download
	if err := h.db.First(&download, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Download not found")
		}
		return response.InternalServerError(c, "Failed to fetch download")
	}

	var req UpdateDownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Title != "" {
		download.Title = validation.SanitizeString(req.Title)
	}
	if req.Category != "" {
		download.Category = validation.SanitizeString(req.Category)
	}
	if req.Description != "" {
		download.Description = validation.SanitizeString(req.Description)
	}
	if req.FileURL != "" {
		download.FileURL = req.FileURL
	}
	if req.FileType != "" {
		download.FileType = req.FileType
	}
	if req.FileSize != "" {
		download.FileSize = req.FileSize
	}
	if req.IsActive != nil {
		download.IsActive = *req.IsActive
	}

	if err := h.db.Save(&download).Error; err != nil {
		return response.InternalServerError(c, "Failed to update download")
	}

	return response.SuccessWithMessage(c, "Download updated successfully", download)
}

// ToggleDownload handles PATCH /api/v1/admin/downloads/:id/toggle
func (h *DownloadHandler) ToggleDownload(c *fiber.Ctx) error {
	id := c.Params("id")

	var download model.Download
	if err := h.db.First(&download, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Download not found")
		}
		return response.InternalServerError(c, "Failed to fetch download")
	}

	download.IsActive = !download.IsActive
	if err := h.db.Save(&download).Error; err != nil {
		return response.InternalServerError(c, "Failed to update download")
	}

	return response.SuccessWithMessage(c, "Download status updated", download)
}

// DeleteDownload handles DELETE /api/v1/admin/downloads/:id
func (h *DownloadHandler) DeleteDownload(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.Download{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete download")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Download not found")
	}

	return response.SuccessWithMessage(c, "Download deleted successfully", fiber.Map{"id": id})
}
