package settings

import (
	"errors"

	settingsvc "github.com/akademika/campus-api/services/settings"
	"github.com/akademika/campus-api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// SettingsHandler serves the public, read-only settings endpoints
type SettingsHandler struct {
	service *settingsvc.Service
}

// NewSettingsHandler creates a new public settings handler
func NewSettingsHandler(service *settingsvc.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// ListSettings handles GET /api/v1/settings
// Returns every section keyed by setting_key for the public site.
func (h *SettingsHandler) ListSettings(c *fiber.Ctx) error {
	sections, err := h.service.LoadAllCached(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch settings")
	}

	return response.Success(c, sections)
}

// GetSetting handles GET /api/v1/settings/:key
func (h *SettingsHandler) GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	setting, err := h.service.Get(c.Context(), key)
	if err != nil {
		if errors.Is(err, settingsvc.ErrNotFound) {
			return response.NotFound(c, "Setting not found")
		}
		return response.InternalServerError(c, "Failed to fetch setting")
	}

	return response.Success(c, setting)
}
