package middleware

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akademika/campus-api/model"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func auditTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "audit.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.AdminAuditLog{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func auditApp(db *gorm.DB, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Post("/news",
		func(c *fiber.Ctx) error {
			c.Locals("user", &model.User{ID: 1, Role: model.RoleAdmin})
			return c.Next()
		},
		AuditLog(db, "news_create", "news"),
		handler,
	)
	return app
}

func auditRowCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&model.AdminAuditLog{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count audit rows: %v", err)
	}
	return count
}

func TestAuditLogRecordsSuccessfulMutation(t *testing.T) {
	db := auditTestDB(t)
	app := auditApp(db, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	req := httptest.NewRequest("POST", "/news", strings.NewReader(`{"title":"Open day"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	if got := auditRowCount(t, db); got != 1 {
		t.Fatalf("audit rows = %d, want 1", got)
	}

	var entry model.AdminAuditLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("failed to load audit row: %v", err)
	}
	if entry.AdminID != 1 {
		t.Errorf("AdminID = %d, want 1", entry.AdminID)
	}
	if entry.Action != "news_create" {
		t.Errorf("Action = %q, want %q", entry.Action, "news_create")
	}
	if !strings.Contains(entry.NewValue, "Open day") {
		t.Errorf("NewValue = %q, want it to carry the request body", entry.NewValue)
	}
}

func TestAuditLogSkipsFailedMutation(t *testing.T) {
	db := auditTestDB(t)
	app := auditApp(db, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false})
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/news", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}

	if got := auditRowCount(t, db); got != 0 {
		t.Errorf("audit rows = %d, want 0 for a failed handler", got)
	}
}

func TestAuditLogSkipsHandlerError(t *testing.T) {
	db := auditTestDB(t)
	app := auditApp(db, func(c *fiber.Ctx) error {
		return fiber.ErrInternalServerError
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/news", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusInternalServerError)
	}

	if got := auditRowCount(t, db); got != 0 {
		t.Errorf("audit rows = %d, want 0 when the handler errors", got)
	}
}
