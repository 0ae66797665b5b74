package gallery

import (
	"strconv"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/akademika/campus-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GalleryHandler handles campus gallery requests
type GalleryHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(db *gorm.DB) *GalleryHandler {
	return &GalleryHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateGalleryItemRequest represents the request body for creating a gallery item
type CreateGalleryItemRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    string `json:"image_url" validate:"required,url,max=512"`
}

// UpdateGalleryItemRequest represents the request body for updating a gallery item
type UpdateGalleryItemRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=255"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    string `json:"image_url" validate:"omitempty,url,max=512"`
	IsActive    *bool  `json:"is_active" validate:"omitempty"`
}

// ListGallery handles GET /api/v1/gallery
func (h *GalleryHandler) ListGallery(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	category := c.Query("category", "")

	query := h.db.Model(&model.GalleryItem{})

	if category != "" {
		query = query.Where("category = ?", category)
	}

	user, _ := middleware.GetUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count gallery items")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var items []model.GalleryItem
	if err := query.Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&items).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch gallery items")
	}

	return response.Paginated(c, items, pagination)
}

// GetGalleryItem handles GET /api/v1/gallery/:id
func (h *GalleryHandler) GetGalleryItem(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.GalleryItem
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Gallery item not found")
		}
		return response.InternalServerError(c, "Failed to fetch gallery item")
	}

	user, _ := middleware.GetUser(c)
	if !item.IsActive && (user == nil || !user.IsAdmin()) {
		return response.NotFound(c, "Gallery item not found")
	}

	return response.Success(c, item)
}

// CreateGalleryItem handles POST /api/v1/admin/gallery
func (h *GalleryHandler) CreateGalleryItem(c *fiber.Ctx) error {
	var req CreateGalleryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	item := model.GalleryItem{
		Title:       validation.SanitizeString(req.Title),
		Category:    validation.SanitizeString(req.Category),
		Description: validation.SanitizeString(req.Description),
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := h.db.Create(&item).Error; err != nil {
		return response.InternalServerError(c, "Failed to create gallery item")
	}

	return response.Created(c, "Gallery item created successfully", item)
}

// UpdateGalleryItem handles PUT /api/v1/admin/gallery/:id
func (h *GalleryHandler) UpdateGalleryItem(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.GalleryItem
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Gallery item not found")
		}
		return response.InternalServerError(c, "Failed to fetch gallery item")
	}

	var req UpdateGalleryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Title != "" {
		item.Title = validation.SanitizeString(req.Title)
	}
	if req.Category != "" {
		item.Category = validation.SanitizeString(req.Category)
	}
	if req.Description != "" {
		item.Description = validation.SanitizeString(req.Description)
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := h.db.Save(&item).Error; err != nil {
		return response.InternalServerError(c, "Failed to update gallery item")
	}

	return response.SuccessWithMessage(c, "Gallery item updated successfully", item)
}

// ToggleGalleryItem handles PATCH /api/v1/admin/gallery/:id/toggle
func (h *GalleryHandler) ToggleGalleryItem(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.GalleryItem
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Gallery item not found")
		}
		return response.InternalServerError(c, "Failed to fetch gallery item")
	}

	item.IsActive = !item.IsActive
	if err := h.db.Save(&item).Error; err != nil {
		return response.InternalServerError(c, "Failed to update gallery item")
	}

	return response.SuccessWithMessage(c, "Gallery item status updated", item)
}

// DeleteGalleryItem handles DELETE /api/v1/admin/gallery/:id
func (h *GalleryHandler) DeleteGalleryItem(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.GalleryItem{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete gallery item")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Gallery item not found")
	}

	return response.SuccessWithMessage(c, "Gallery item deleted successfully", fiber.Map{"id": id})
}
