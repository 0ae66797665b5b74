package middleware

import (
	"encoding/json"
	"strconv"

	"github.com/akademika/campus-api/model"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuditLog records an admin mutation after the wrapped handler completes.
// It must run inside a RequireAdmin group so the admin identity is resolved.
func AuditLog(db *gorm.DB, action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, ok := GetUser(c)
		if !ok || admin == nil {
			return c.Next()
		}

		var resourceID uint
		if id := c.Params("id"); id != "" {
			if parsedID, err := strconv.ParseUint(id, 10, 32); err == nil {
				resourceID = uint(parsedID)
			}
		}

		var newValue interface{}
		if c.Method() == fiber.MethodPost || c.Method() == fiber.MethodPut || c.Method() == fiber.MethodPatch {
			if body := c.Body(); len(body) > 0 {
				json.Unmarshal(body, &newValue)
			}
		}

		method := c.Method()
		path := c.Path()
		ip := c.IP()
		userAgent := c.Get("User-Agent")

		err := c.Next()

		// Only successful mutations enter the trail; a handler that
		// errored or returned a non-2xx status changed nothing worth
		// attributing to the admin.
		status := c.Response().StatusCode()
		if err != nil || status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
			return err
		}

		newValueJSON, _ := json.Marshal(newValue)

		entry := model.AdminAuditLog{
			AdminID:     admin.ID,
			Action:      action,
			Resource:    resource,
			ResourceID:  resourceID,
			NewValue:    string(newValueJSON),
			IPAddress:   ip,
			UserAgent:   userAgent,
			Description: method + " " + path,
		}

		db.Create(&entry)

		return err
	}
}
