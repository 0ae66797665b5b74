package laboratory

import (
	"strconv"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/akademika/campus-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// LaboratoryHandler handles campus laboratory requests
type LaboratoryHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewLaboratoryHandler creates a new laboratory handler
func NewLaboratoryHandler(db *gorm.DB) *LaboratoryHandler {
	return &LaboratoryHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateLaboratoryRequest represents the request body for creating a laboratory
type CreateLaboratoryRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"required"`
	Facilities  []string `json:"facilities" validate:"omitempty,dive,min=1,max=255"`
	Capacity    int      `json:"capacity" validate:"omitempty,gte=0"`
}

// UpdateLaboratoryRequest represents the request body for updating a laboratory
type UpdateLaboratoryRequest struct {
	Name        string   `json:"name" validate:"omitempty,min=3,max=255"`
	Description string   `json:"description" validate:"omitempty"`
	Facilities  []string `json:"facilities" validate:"omitempty,dive,min=1,max=255"`
	Capacity    *int     `json:"capacity" validate:"omitempty,gte=0"`
	IsAvailable *bool    `json:"is_available" validate:"omitempty"`
}

// ListLaboratories handles GET /api/v1/laboratories
func (h *LaboratoryHandler) ListLaboratories(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search", "")

	query := h.db.Model(&model.Laboratory{})

	if search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	user, _ := middleware.GetUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("is_available = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count laboratories")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var labs []model.Laboratory
	if err := query.Order("name ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&labs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch laboratories")
	}

	return response.Paginated(c, labs, pagination)
}

// GetLaboratory handles GET /api/v1/laboratories/:id
func (h *LaboratoryHandler) GetLaboratory(c *fiber.Ctx) error {
	id := c.Params("id")

	var lab model.Laboratory
	if err := h.db.First(&lab, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Laboratory not found")
		}
		return response.InternalServerError(c, "Failed to fetch laboratory")
	}

	user, _ := middleware.GetUser(c)
	if !lab.IsAvailable && (user == nil || !user.IsAdmin()) {
		return response.NotFound(c, "Laboratory not found")
	}

	return response.Success(c, lab)
}

// CreateLaboratory handles POST /api/v1/admin/laboratories
func (h *LaboratoryHandler) CreateLaboratory(c *fiber.Ctx) error {
	var req CreateLaboratoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var existing model.Laboratory
	if err := h.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return response.Conflict(c, "A laboratory with this name already exists")
	}

	lab := model.Laboratory{
		Name:        validation.SanitizeString(req.Name),
		Description: validation.SanitizeString(req.Description),
		Facilities:  pq.StringArray(req.Facilities),
		Capacity:    req.Capacity,
		IsAvailable: true,
	}

	if err := h.db.Create(&lab).Error; err != nil {
		return response.InternalServerError(c, "Failed to create laboratory")
	}

	return response.Created(c, "Laboratory created successfully", lab)
}

// UpdateLaboratory handles PUT /api/v1/admin/laboratories/:id
func (h *LaboratoryHandler) UpdateLaboratory(c *fiber.Ctx) error {
	id := c.Params("id")

	var lab model.Laboratory
	if err := h.db.First(&lab, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Laboratory not found")
		}
		return response.InternalServerError(c, "Failed to fetch laboratory")
	}

	var req UpdateLaboratoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Name != "" && req.Name != lab.Name {
		var existing model.Laboratory
		if err := h.db.Where("name = ? AND id != ?", req.Name, lab.ID).First(&existing).Error; err == nil {
			return response.Conflict(c, "A laboratory with this name already exists")
		}
		lab.Name = validation.SanitizeString(req.Name)
	}
	if req.Description != "" {
		lab.Description = validation.SanitizeString(req.Description)
	}
	if req.Facilities != nil {
		lab.Facilities = pq.StringArray(req.Facilities)
	}
	if req.Capacity != nil {
		lab.Capacity = *req.Capacity
	}
	if req.IsAvailable != nil {
		lab.IsAvailable = *req.IsAvailable
	}

	if err := h.db.Save(&lab).Error; err != nil {
		return response.InternalServerError(c, "Failed to update laboratory")
	}

	return response.SuccessWithMessage(c, "Laboratory updated successfully", lab)
}

// ToggleLaboratory handles PATCH /api/v1/admin/laboratories/:id/toggle
// Flips the availability flag.
func (h *LaboratoryHandler) ToggleLaboratory(c *fiber.Ctx) error {
	id := c.Params("id")

	var lab model.Laboratory
	if err := h.db.First(&lab, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Laboratory not found")
		}
		return response.InternalServerError(c, "Failed to fetch laboratory")
	}

	lab.IsAvailable = !lab.IsAvailable
	if err := h.db.Save(&lab).Error; err != nil {
		return response.InternalServerError(c, "Failed to update laboratory")
	}

	return response.SuccessWithMessage(c, "Laboratory status updated", lab)
}

// DeleteLaboratory handles DELETE /api/v1/admin/laboratories/:id
func (h *LaboratoryHandler) DeleteLaboratory(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.Laboratory{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete laboratory")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Laboratory not found")
	}

	return response.SuccessWithMessage(c, "Laboratory deleted successfully", fiber.Map{"id": id})
}
