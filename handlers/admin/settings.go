package admin

import (
	"errors"

	settingsvc "github.com/akademika/campus-api/services/settings"
	"github.com/akademika/campus-api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// SettingsHandler exposes the admin settings screen's persistence contract
type SettingsHandler struct {
	service *settingsvc.Service
}

// NewSettingsHandler creates a new admin settings handler
func NewSettingsHandler(service *settingsvc.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// ListSettings retrieves all settings sections keyed by setting_key
// GET /admin/settings
func (h *SettingsHandler) ListSettings(c *fiber.Ctx) error {
	sections, err := h.service.LoadAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch settings")
	}

	return response.SuccessWithMessage(c, "Settings retrieved successfully", sections)
}

// GetSetting retrieves a specific section by key
// GET /admin/settings/:key
func (h *SettingsHandler) GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	setting, err := h.service.Get(c.Context(), key)
	if err != nil {
		if errors.Is(err, settingsvc.ErrNotFound) {
			return response.NotFound(c, "Setting not found")
		}
		return response.InternalServerError(c, "Failed to fetch setting")
	}

	return response.SuccessWithMessage(c, "Setting retrieved successfully", setting)
}

// SaveSection merges the posted fields into the section stored at :key and
// persists the result. Fields not present in the request are retained.
// PUT /admin/settings/:key
func (h *SettingsHandler) SaveSection(c *fiber.Ctx) error {
	key := c.Params("key")

	var partial map[string]interface{}
	if err := c.BodyParser(&partial); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	setting, err := h.service.SaveSection(c.Context(), key, partial)
	if err != nil {
		if errors.Is(err, settingsvc.ErrEmptySection) {
			return response.ValidationError(c, err)
		}
		return response.InternalServerError(c, "Failed to save setting")
	}

	return response.SuccessWithMessage(c, "Setting saved successfully", setting)
}
