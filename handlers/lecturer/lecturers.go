package lecturer

import (
	"strconv"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/akademika/campus-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LecturerHandler handles faculty profile requests
type LecturerHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewLecturerHandler creates a new lecturer handler
func NewLecturerHandler(db *gorm.DB) *LecturerHandler {
	return &LecturerHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateLecturerRequest represents the request body for creating a lecturer
type CreateLecturerRequest struct {
	Name       string `json:"name" validate:"required,min=3,max=255"`
	Field      string `json:"field" validate:"required,min=2,max=255"`
	Education  string `json:"education" validate:"required"`
	Experience string `json:"experience" validate:"omitempty"`
	Email      string `json:"email" validate:"omitempty,email,max=255"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	ImageURL   string `json:"image_url" validate:"omitempty,url,max=512"`
}

// UpdateLecturerRequest represents the request body for updating a lecturer
type UpdateLecturerRequest struct {
	Name       string `json:"name" validate:"omitempty,min=3,max=255"`
	Field      string `json:"field" validate:"omitempty,min=2,max=255"`
	Education  string `json:"education" validate:"omitempty"`
	Experience string `json:"experience" validate:"omitempty"`
	Email      string `json:"email" validate:"omitempty,email,max=255"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	ImageURL   string `json:"image_url" validate:"omitempty,url,max=512"`
	IsActive   *bool  `json:"is_active" validate:"omitempty"`
}

// ListLecturers handles GET /api/v1/lecturers
func (h *LecturerHandler) ListLecturers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search", "")
	field := c.Query("field", "")

	query := h.db.Model(&model.Lecturer{})

	if search != "" {
		query = query.Where("name ILIKE ? OR field ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}
	if field != "" {
		query = query.Where("field = ?", field)
	}

	user, _ := middleware.GetUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count lecturers")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var lecturers []model.Lecturer
	if err := query.Order("name ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&lecturers).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch lecturers")
	}

	return response.Paginated(c, lecturers, pagination)
}

// GetLecturer handles GET /api/v1/lecturers/:id
func (h *LecturerHandler) GetLecturer(c *fiber.Ctx) error {
	id := c.Params("id")

	var lecturer model.Lecturer
	if err := h.db.First(&lecturer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Lecturer not found")
		}
		return response.InternalServerError(c, "Failed to fetch lecturer")
	}

	user, _ := middleware.GetUser(c)
	if !lecturer.IsActive && (user == nil || !user.IsAdmin()) {
		return response.NotFound(c, "Lecturer not found")
	}

	return response.Success(c, lecturer)
}

// CreateLecturer handles POST /api/v1/admin/lecturers
func (h *LecturerHandler) CreateLecturer(c *fiber.Ctx) error {
	var req CreateLecturerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var existing model.Lecturer
	if err := h.db.Where("name = ? AND field = ?", req.Name, req.Field).First(&existing).Error; err == nil {
		return response.Conflict(c, "A lecturer with this name and field already exists")
	}

	lecturer := model.Lecturer{
		Name:       validation.SanitizeString(req.Name),
		Field:      validation.SanitizeString(req.Field),
		Education:  validation.SanitizeString(req.Education),
		Experience: validation.SanitizeString(req.Experience),
		Email:      req.Email,
		Phone:      req.Phone,
		ImageURL:   req.ImageURL,
		IsActive:   true,
	}

	if err := h.db.Create(&lecturer).Error; err != nil {
		return response.InternalServerError(c, "Failed to create lecturer")
	}

	return response.Created(c, "Lecturer created successfully", lecturer)
}

// UpdateLecturer handles PUT /api/v1/admin/lecturers/:id
func (h *LecturerHandler) UpdateLecturer(c *fiber.Ctx) error {
	id := c.Params("id")

	var lecturer model.Lecturer
	if err := h.db.First(&lecturer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Lecturer not found")
		}
		return response.InternalServerError(c, "Failed to fetch lecturer")
	}

	var req UpdateLecturerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Name != "" {
		lecturer.Name = validation.SanitizeString(req.Name)
	}
	if req.Field != "" {
		lecturer.Field = validation.SanitizeString(req.Field)
	}
	if req.Education != "" {
		lecturer.Education = validation.SanitizeString(req.Education)
	}
	if req.Experience != "" {
		lecturer.Experience = validation.SanitizeString(req.Experience)
	}
	if req.Email != "" {
		lecturer.Email = req.Email
	}
	if req.Phone != "" {
		lecturer.Phone = req.Phone
	}
	if req.ImageURL != "" {
		lecturer.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		lecturer.IsActive = *req.IsActive
	}

	if err := h.db.Save(&lecturer).Error; err != nil {
		return response.InternalServerError(c, "Failed to update lecturer")
	}

	return response.SuccessWithMessage(c, "Lecturer updated successfully", lecturer)
}

// ToggleLecturer handles PATCH /api/v1/admin/lecturers/:id/toggle
func (h *LecturerHandler) ToggleLecturer(c *fiber.Ctx) error {
	id := c.Params("id")

	var lecturer model.Lecturer
	if err := h.db.First(&lecturer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Lecturer not found")
		}
		return response.InternalServerError(c, "Failed to fetch lecturer")
	}

	lecturer.IsActive = !lecturer.IsActive
	if err := h.db.Save(&lecturer).Error; err != nil {
		return response.InternalServerError(c, "Failed to update lecturer")
	}

	return response.SuccessWithMessage(c, "Lecturer status updated", lecturer)
}

// DeleteLecturer handles DELETE /api/v1/admin/lecturers/:id
func (h *LecturerHandler) DeleteLecturer(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.Lecturer{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete lecturer")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Lecturer not found")
	}

	return response.SuccessWithMessage(c, "Lecturer deleted successfully", fiber.Map{"id": id})
}
