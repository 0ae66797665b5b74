package activity

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

// ActivityHandler handles student activity requests
type ActivityHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(db *gorm.DB) *ActivityHandler {
	return &ActivityHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateActivityRequest represents the request body for creating an activity category
type CreateActivityRequest struct {
	Category string   `json:"category" validate:"required,min=2,max=255"`
	Icon     string   `json:"icon" validate:"omitempty,max=100"`
	Items    []string `json:"items" validate:"omitempty,dive,min=1,max=255"`
}

// UpdateActivityRequest represents the request body for updating an activity category
type UpdateActivityRequest struct {
	Category string   `json:"category" validate:"omitempty,min=2,max=255"`
	Icon     string   `json:"icon" validate:"omitempty,max=100"`
	Items    []string `json:"items" validate:"omitempty,dive,min=1,max=255"`
	IsActive *bool    `json:"is_active" validate:"omitempty"`
}

// ListActivities handles GET /api/v1/student-activities
func (h *ActivityHandler) ListActivities(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	query := h.db.Model(&model.StudentActivity{})

	user, _ := middleware.GetUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count student activities")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var activities []model.StudentActivity
	if err := query.Order("category ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&activities).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch student activities")
	}

	return response.Paginated(c, activities, pagination)
}

// GetActivity handles GET /api/v1/student-activities/:id
func (h *ActivityHandler) GetActivity(c *fiber.Ctx) error {
	id := c.Params("id")

	var activity model.StudentActivity
	if err := h.db.First(&activity, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student activity not found")
		}
		return response.InternalServerError(c, "Failed to fetch student activity")
	}

	user, _ := middleware.GetUser(c)
	if !activity.IsActive && (user == nil || !user.IsAdmin()) {
		return response.NotFound(c, "Student activity not found")
	}

	return response.Success(c, activity)
}

// CreateActivity handles POST /api/v1/admin/student-activities
func (h *ActivityHandler) CreateActivity(c *fiber.Ctx) error {
	var req CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var existing model.StudentActivity
	if err := h.db.Where("category = ?", req.Category).First(&existing).Error; err == nil {
		return response.Conflict(c, "An activity category with this name already exists")
	}

	activity := model.StudentActivity{
		Category: validation.SanitizeString(req.Category),
		Icon:     req.Icon,
		Items:    pq.StringArray(req.Items),
		IsActive: true,
	}

	if err := h.db.Create(&activity).Error; err != nil {
		return response.InternalServerError(c, "Failed to create student activity")
	}

	return response.Created(c, "Student activity created successfully", activity)
}

// UpdateActivity handles PUT /api/v1/admin/student-activities/:id
func (h *ActivityHandler) UpdateActivity(c *fiber.Ctx) error {
	id := c.Params("id")

	var activity model.StudentActivity
	if err := h.db.First(&activity, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student activity not found")
		}
		return response.InternalServerError(c, "Failed to fetch student activity")
	}

	var req UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Category != "" && req.Category != activity.Category {
		var existing model.StudentActivity
		if err := h.db.Where("category = ? AND id != ?", req.Category, activity.ID).First(&existing).Error; err == nil {
			return response.Conflict(c, "An activity category with this name already exists")
		}
		activity.Category = validation.SanitizeString(req.Category)
	}
	if req.Icon != "" {
		activity.Icon = req.Icon
	}
	if req.Items != nil {
		activity.Items = pq.StringArray(req.Items)
	}
	if req.IsActive != nil {
		activity.IsActive = *req.IsActive
	}

	if err := h.db.Save(&activity).Error; err != nil {
		return response.InternalServerError(c, "Failed to update student activity")
	}

	return response.SuccessWithMessage(c, "Student activity updated successfully", activity)
}

// ToggleActivity handles PATCH /api/v1/admin/student-activities/:id/toggle
func (h *ActivityHandler) ToggleActivity(c *fiber.Ctx) error {
	id := c.Params("id")

	var activity model.StudentActivity
	if err := h.db.First(&activity, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student activity not found")
		}
		return response.InternalServerError(c, "Failed to fetch student activity")
	}

	activity.IsActive = !activity.IsActive
	if err := h.db.Save(&activity).Error; err != nil {
		return response.InternalServerError(c, "Failed to update student activity")
	}

	return response.SuccessWithMessage(c, "Student activity status updated", activity)
}

// DeleteActivity handles DELETE /api/v1/admin/student-activities/:id
func (h *ActivityHandler) DeleteActivity(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.StudentActivity{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete student activity")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Student activity not found")
	}

	return response.SuccessWithMessage(c, "Student activity deleted successfully", fiber.Map{"id": id})
}
