package calendar

import (
	"strconv"
	"time"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/akademika/campus-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CalendarHandler handles academic calendar requests
type CalendarHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(db *gorm.DB) *CalendarHandler {
	return &CalendarHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateEventRequest represents the request body for creating a calendar event
type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=255"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	EventType   string     `json:"event_type" validate:"omitempty,oneof=academic exam holiday registration"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date" validate:"omitempty"`
}

// UpdateEventRequest represents the request body for updating a calendar event
type UpdateEventRequest struct {
	Title       string     `json:"title" validate:"omitempty,min=3,max=255"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	EventType   string     `json:"event_type" validate:"omitempty,oneof=academic exam holiday registration"`
	StartDate   *time.Time `json:"start_date" validate:"omitempty"`
	EndDate     *time.Time `json:"end_date" validate:"omitempty"`
	IsActive    *bool      `json:"is_active" validate:"omitempty"`
}

// ListEvents handles GET /api/v1/calendar
// Supports filtering by event type and by year so the public site can render
// one academic year at a time.
func (h *CalendarHandler) ListEvents(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	eventType := c.Query("event_type", "")

	query := h.db.Model(&model.CalendarEvent{})

	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	if year := c.Query("year", ""); year != "" {
		if y, err := strconv.Atoi(year); err == nil {
			from := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
			to := from.AddDate(1, 0, 0)
			query = query.Where("start_date >= ? AND start_date < ?", from, to)
		}
	}

	user, _ := middleware.GetUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count calendar events")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var events []model.CalendarEvent
	if err := query.Order("start_date ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&events).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch calendar events")
	}

	return response.Paginated(c, events, pagination)
}

// GetEvent handles GET /api/v1/calendar/:id
func (h *CalendarHandler) GetEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var event model.CalendarEvent
	if err := h.db.First(&event, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Calendar event not found")
		}
		return response.InternalServerError(c, "Failed to fetch calendar event")
	}

	user, _ := middleware.GetUser(c)
	if !event.IsActive && (user == nil || !user.IsAdmin()) {
		return response.NotFound(c, "Calendar event not found")
	}

	return response.Success(c, event)
}

// CreateEvent handles POST /api/v1/admin/calendar
func (h *CalendarHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return response.BadRequest(c, "End date cannot be before start date")
	}

	event := model.CalendarEvent{
		Title:       validation.SanitizeString(req.Title),
		Description: validation.SanitizeString(req.Description),
		EventType:   req.EventType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    true,
	}
	if event.EventType == "" {
		event.EventType = "academic"
	}

	if err := h.db.Create(&event).Error; err != nil {
		return response.InternalServerError(c, "Failed to create calendar event")
	}

	return response.Created(c, "Calendar event created successfully", event)
}

// UpdateEvent handles PUT /api/v1/admin/calendar/:id
func (h *CalendarHandler) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var event model.CalendarEvent
	if err := h.db.First(&event, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Calendar event not found")
		}
		return response.InternalServerError(c, "Failed to fetch calendar event")
	}

	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Title != "" {
		event.Title = validation.SanitizeString(req.Title)
	}
	if req.Description != "" {
		event.Description = validation.SanitizeString(req.Description)
	}
	if req.EventType != "" {
		event.EventType = req.EventType
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if event.EndDate != nil && event.EndDate.Before(event.StartDate) {
		return response.BadRequest(c, "End date cannot be before start date")
	}

	if err := h.db.Save(&event).Error; err != nil {
		return response.InternalServerError(c, "Failed to update calendar event")
	}

	return response.SuccessWithMessage(c, "Calendar event updated successfully", event)
}

// ToggleEvent handles PATCH /api/v1/admin/calendar/:id/toggle
func (h *CalendarHandler) ToggleEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var event model.CalendarEvent
	if err := h.db.First(&event, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Calendar event not found")
		}
		return response.InternalServerError(c, "Failed to fetch calendar event")
	}

	event.IsActive = !event.IsActive
	if err := h.db.Save(&event).Error; err != nil {
		return response.InternalServerError(c, "Failed to update calendar event")
	}

	return response.SuccessWithMessage(c, "Calendar event status updated", event)
}

// DeleteEvent handles DELETE /api/v1/admin/calendar/:id
func (h *CalendarHandler) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.CalendarEvent{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete calendar event")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Calendar event not found")
	}

	return response.SuccessWithMessage(c, "Calendar event deleted successfully", fiber.Map{"id": id})
}
