package orgstructure

import (
	"strconv"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/akademika/campus-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OrgStructureHandler handles organizational structure requests
type OrgStructureHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewOrgStructureHandler creates a new org structure handler
func NewOrgStructureHandler(db *gorm.DB) *OrgStructureHandler {
	return &OrgStructureHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateOrgUnitRequest represents the request body for creating an org unit
type CreateOrgUnitRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Position string `json:"position" validate:"required,min=2,max=255"`
	Level    int    `json:"level" validate:"required,gte=1,lte=10"`
	ParentID *uint  `json:"parent_id" validate:"omitempty"`
	ImageURL string `json:"image_url" validate:"omitempty,url,max=512"`
}

// UpdateOrgUnitRequest represents the request body for updating an org unit
type UpdateOrgUnitRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=255"`
	Position string `json:"position" validate:"omitempty,min=2,max=255"`
	Level    *int   `json:"level" validate:"omitempty,gte=1,lte=10"`
	ParentID *uint  `json:"parent_id" validate:"omitempty"`
	ImageURL string `json:"image_url" validate:"omitempty,url,max=512"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

// validateParent enforces the tree shape: the parent must exist, must sit at a
// strictly lower level than the child, and a unit can never parent itself.
func (h *OrgStructureHandler) validateParent(c *fiber.Ctx, unitID uint, parentID uint, level int) (bool, error) {
	if parentID == unitID {
		return false, response.BadRequest(c, "A unit cannot be its own parent")
	}

	var parent model.OrgUnit
	if err := h.db.First(&parent, parentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, response.BadRequest(c, "Parent unit does not exist")
		}
		return false, response.InternalServerError(c, "Failed to fetch parent unit")
	}

	if parent.Level >= level {
		return false, response.BadRequest(c, "Parent unit must sit at a lower level than its child")
	}

	return true, nil
}

// ListOrgUnits handles GET /api/v1/organizational-structure
// Units are ordered by level then name so the client can render the chart
// top-down without re-sorting.
func (h *OrgStructureHandler) ListOrgUnits(c *fiber.Ctx) error {
	query := h.db.Model(&model.OrgUnit{})

	if level := c.Query("level", ""); level != "" {
		if l, err := strconv.Atoi(level); err == nil {
			query = query.Where("level = ?", l)
		}
	}

	user, _ := middleware.GetUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("is_active = ?", true)
	}

	var units []model.OrgUnit
	if err := query.Order("level ASC, name ASC").Find(&units).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch organizational structure")
	}

	return response.Success(c, units)
}

// GetOrgUnit handles GET /api/v1/organizational-structure/:id
func (h *OrgStructureHandler) GetOrgUnit(c *fiber.Ctx) error {
	id := c.Params("id")

	var unit model.OrgUnit
	if err := h.db.Preload("Parent").Preload("Children").First(&unit, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Organizational unit not found")
		}
		return response.InternalServerError(c, "Failed to fetch organizational unit")
	}

	user, _ := middleware.GetUser(c)
	if !unit.IsActive && (user == nil || !user.IsAdmin()) {
		return response.NotFound(c, "Organizational unit not found")
	}

	return response.Success(c, unit)
}

// CreateOrgUnit handles POST /api/v1/admin/organizational-structure
func (h *OrgStructureHandler) CreateOrgUnit(c *fiber.Ctx) error {
	var req CreateOrgUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.ParentID != nil {
		if ok, errResp := h.validateParent(c, 0, *req.ParentID, req.Level); !ok {
			return errResp
		}
	}

	var existing model.OrgUnit
	if err := h.db.Where("name = ? AND position = ?", req.Name, req.Position).First(&existing).Error; err == nil {
		return response.Conflict(c, "A unit with this name and position already exists")
	}

	unit := model.OrgUnit{
		Name:     validation.SanitizeString(req.Name),
		Position: validation.SanitizeString(req.Position),
		Level:    req.Level,
		ParentID: req.ParentID,
		ImageURL: req.ImageURL,
		IsActive: true,
	}

	if err := h.db.Create(&unit).Error; err != nil {
		return response.InternalServerError(c, "Failed to create organizational unit")
	}

	return response.Created(c, "Organizational unit created successfully", unit)
}

// UpdateOrgUnit handles PUT /api/v1/admin/organizational-structure/:id
func (h *OrgStructureHandler) UpdateOrgUnit(c *fiber.Ctx) error {
	id := c.Params("id")

	var unit model.OrgUnit
	if err := h.db.First(&unit, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Organizational unit not found")
		}
		return response.InternalServerError(c, "Failed to fetch organizational unit")
	}

	var req UpdateOrgUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Name != "" {
		unit.Name = validation.SanitizeString(req.Name)
	}
	if req.Position != "" {
		unit.Position = validation.SanitizeString(req.Position)
	}
	if req.Level != nil {
		unit.Level = *req.Level
	}
	if req.ParentID != nil {
		unit.ParentID = req.ParentID
	}
	if req.ImageURL != "" {
		unit.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		unit.IsActive = *req.IsActive
	}

	if unit.ParentID != nil {
		if ok, errResp := h.validateParent(c, unit.ID, *unit.ParentID, unit.Level); !ok {
			return errResp
		}
	}

	// Lowering a unit below its children would invert the tree
	if req.Level != nil {
		var count int64
		if err := h.db.Model(&model.OrgUnit{}).
			Where("parent_id = ? AND level <= ?", unit.ID, unit.Level).
			Count(&count).Error; err != nil {
			return response.InternalServerError(c, "Failed to validate unit level")
		}
		if count > 0 {
			return response.BadRequest(c, "Unit level must stay above the levels of its children")
		}
	}

	if err := h.db.Save(&unit).Error; err != nil {
		return response.InternalServerError(c, "Failed to update organizational unit")
	}

	return response.SuccessWithMessage(c, "Organizational unit updated successfully", unit)
}

// ToggleOrgUnit handles PATCH /api/v1/admin/organizational-structure/:id/toggle
func (h *OrgStructureHandler) ToggleOrgUnit(c *fiber.Ctx) error {
	id := c.Params("id")

	var unit model.OrgUnit
	if err := h.db.First(&unit, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Organizational unit not found")
		}
		return response.InternalServerError(c, "Failed to fetch organizational unit")
	}

	unit.IsActive = !unit.IsActive
	if err := h.db.Save(&unit).Error; err != nil {
		return response.InternalServerError(c, "Failed to update organizational unit")
	}

	return response.SuccessWithMessage(c, "Organizational unit status updated", unit)
}

// DeleteOrgUnit handles DELETE /api/v1/admin/organizational-structure/:id
// Units with children cannot be removed until the children are reassigned.
func (h *OrgStructureHandler) DeleteOrgUnit(c *fiber.Ctx) error {
	id := c.Params("id")

	var childCount int64
	if err := h.db.Model(&model.OrgUnit{}).
		Where("parent_id = ?", id).
		Count(&childCount).Error; err != nil {
		return response.InternalServerError(c, "Failed to check unit children")
	}
	if childCount > 0 {
		return response.Conflict(c, "Unit still has child units; reassign them first")
	}

	result := h.db.Delete(&model.OrgUnit{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete organizational unit")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Organizational unit not found")
	}

	return response.SuccessWithMessage(c, "Organizational unit deleted successfully", fiber.Map{"id": id})
}
