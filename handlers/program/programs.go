package program

import (
	"strconv"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/akademika/campus-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProgramHandler handles study program requests
type ProgramHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewProgramHandler creates a new program handler
func NewProgramHandler(db *gorm.DB) *ProgramHandler {
	return &ProgramHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateProgramRequest represents the request body for creating a program
type CreateProgramRequest struct {
	Name          string `json:"name" validate:"required,min=3,max=255"`
	Description   string `json:"description" validate:"omitempty,max=5000"`
	Accreditation string `json:"accreditation" validate:"omitempty,max=50"`
	ImageURL      string `json:"image_url" validate:"omitempty,url,max=512"`
}

// UpdateProgramRequest represents the request body for updating a program
type UpdateProgramRequest struct {
	Name          string `json:"name" validate:"omitempty,min=3,max=255"`
	Description   string `json:"description" validate:"omitempty,max=5000"`
	Accreditation string `json:"accreditation" validate:"omitempty,max=50"`
	ImageURL      string `json:"image_url" validate:"omitempty,url,max=512"`
	IsActive      *bool  `json:"is_active" validate:"omitempty"`
}

// ListPrograms handles GET /api/v1/programs
// Anonymous callers only see active programs; admins see everything.
func (h *ProgramHandler) ListPrograms(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search", "")

	query := h.db.Model(&model.Program{})

	if search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	user, _ := middleware.GetUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("is_active = ?", true)
	} else if isActive := c.Query("is_active", ""); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count programs")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var programs []model.Program
	if err := query.Order("name ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&programs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch programs")
	}

	return response.Paginated(c, programs, pagination)
}

// GetProgram handles GET /api/v1/programs/:id
func (h *ProgramHandler) GetProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.Program
	if err := h.db.First(&program, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Program not found")
		}
		return response.InternalServerError(c, "Failed to fetch program")
	}

	user, _ := middleware.GetUser(c)
	if !program.IsActive && (user == nil || !user.IsAdmin()) {
		return response.NotFound(c, "Program not found")
	}

	return response.Success(c, program)
}

// CreateProgram handles POST /api/v1/admin/programs
func (h *ProgramHandler) CreateProgram(c *fiber.Ctx) error {
	var req CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var existing model.Program
	if err := h.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return response.Conflict(c, "A program with this name already exists")
	}

	program := model.Program{
		Name:          validation.SanitizeString(req.Name),
		Description:   validation.SanitizeString(req.Description),
		Accreditation: validation.SanitizeString(req.Accreditation),
		ImageURL:      req.ImageURL,
		IsActive:      true,
	}

	if err := h.db.Create(&program).Error; err != nil {
		return response.InternalServerError(c, "Failed to create program")
	}

	return response.Created(c, "Program created successfully", program)
}

// UpdateProgram handles PUT /api/v1/admin/programs/:id
func (h *ProgramHandler) UpdateProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.Program
	if err := h.db.First(&program, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Program not found")
		}
		return response.InternalServerError(c, "Failed to fetch program")
	}

	var req UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Name != "" && req.Name != program.Name {
		var existing model.Program
		if err := h.db.Where("name = ? AND id != ?", req.Name, program.ID).First(&existing).Error; err == nil {
			return response.Conflict(c, "A program with this name already exists")
		}
		program.Name = validation.SanitizeString(req.Name)
	}
	if req.Description != "" {
		program.Description = validation.SanitizeString(req.Description)
	}
	if req.Accreditation != "" {
		program.Accreditation = validation.SanitizeString(req.Accreditation)
	}
	if req.ImageURL != "" {
		program.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		program.IsActive = *req.IsActive
	}

	if err := h.db.Save(&program).Error; err != nil {
		return response.InternalServerError(c, "Failed to update program")
	}

	return response.SuccessWithMessage(c, "Program updated successfully", program)
}

// DeleteProgram handles DELETE /api/v1/admin/programs/:id
func (h *ProgramHandler) DeleteProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.Program{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete program")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Program not found")
	}

	return response.SuccessWithMessage(c, "Program deleted successfully", fiber.Map{"id": id})
}

// ToggleProgram handles PATCH /api/v1/admin/programs/:id/toggle
func (h *ProgramHandler) ToggleProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.Program
	if err := h.db.First(&program, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Program not found")
		}
		return response.InternalServerError(c, "Failed to fetch program")
	}

	program.IsActive = !program.IsActive
	if err := h.db.Save(&program).Error; err != nil {
		return response.InternalServerError(c, "Failed to update program")
	}

	return response.SuccessWithMessage(c, "Program status updated", program)
}
