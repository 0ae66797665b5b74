package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akademika/campus-api/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "settings.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.CampusSetting{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewService(db, nil)
}

func settingRowCount(t *testing.T, svc *Service) int64 {
	t.Helper()

	var count int64
	if err := svc.db.Model(&model.CampusSetting{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func TestSaveSectionEmptyPartialOnAbsentKeyCreatesNothing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveSection(ctx, model.SettingContactInfo, map[string]interface{}{})
	if err != ErrEmptySection {
		t.Fatalf("SaveSection() error = %v, want ErrEmptySection", err)
	}

	if got := settingRowCount(t, svc); got != 0 {
		t.Errorf("row count = %d, want 0 after rejected save", got)
	}

	if _, err := svc.Get(ctx, model.SettingContactInfo); err != ErrNotFound {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSaveSectionRetainsSiblingFieldsInStore(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SaveSection(ctx, model.SettingContactInfo, map[string]interface{}{"phone": "A"}); err != nil {
		t.Fatalf("first SaveSection() error = %v", err)
	}

	if _, err := svc.SaveSection(ctx, model.SettingContactInfo, map[string]interface{}{"email": "b@x.com"}); err != nil {
		t.Fatalf("second SaveSection() error = %v", err)
	}

	sections, err := svc.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	contact, ok := sections[model.SettingContactInfo]
	if !ok {
		t.Fatalf("section %q missing from LoadAll()", model.SettingContactInfo)
	}
	if contact["phone"] != "A" {
		t.Errorf("phone = %v, want %q", contact["phone"], "A")
	}
	if contact["email"] != "b@x.com" {
		t.Errorf("email = %v, want %q", contact["email"], "b@x.com")
	}

	if got := settingRowCount(t, svc); got != 1 {
		t.Errorf("row count = %d, want 1 (upsert must not duplicate the key)", got)
	}
}

func TestSaveSectionOverwritesChangedFieldsInStore(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SaveSection(ctx, model.SettingHeroSection, map[string]interface{}{
		"title":    "Old title",
		"subtitle": "Keep me",
	}); err != nil {
		t.Fatalf("first SaveSection() error = %v", err)
	}

	if _, err := svc.SaveSection(ctx, model.SettingHeroSection, map[string]interface{}{"title": "New title"}); err != nil {
		t.Fatalf("second SaveSection() error = %v", err)
	}

	row, err := svc.Get(ctx, model.SettingHeroSection)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if row.Value["title"] != "New title" {
		t.Errorf("title = %v, want %q", row.Value["title"], "New title")
	}
	if row.Value["subtitle"] != "Keep me" {
		t.Errorf("subtitle = %v, want %q", row.Value["subtitle"], "Keep me")
	}
}

func TestSaveSectionEmptyPartialKeepsExistingDocument(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SaveSection(ctx, model.SettingStats, map[string]interface{}{"active_students": 1200}); err != nil {
		t.Fatalf("SaveSection() error = %v", err)
	}

	// An empty partial merged over a non-empty document is a no-op write,
	// not an error: the merge result still carries the stored fields.
	row, err := svc.SaveSection(ctx, model.SettingStats, map[string]interface{}{})
	if err != nil {
		t.Fatalf("SaveSection() with empty partial error = %v", err)
	}

	if _, ok := row.Value["active_students"]; !ok {
		t.Error("existing field dropped by empty-partial save")
	}
}
