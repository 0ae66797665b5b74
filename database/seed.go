package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/auth"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedCampusSettings(); err != nil {
		return fmt.Errorf("failed to seed campus settings: %w", err)
	}

	if err := s.SeedPrograms(); err != nil {
		return fmt.Errorf("failed to seed programs: %w", err)
	}

	if err := s.SeedCalendar(); err != nil {
		return fmt.Errorf("failed to seed academic calendar: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default super admin account
func (s *Seeder) SeedAdminUser() error {
	var count int64
	s.db.Model(&model.User{}).Where("role = ?", model.RoleSuperAdmin).Count(&count)
	if count > 0 {
		log.Println("Super admin already exists, skipping")
		return nil
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:        "admin@campus.ac.id",
		PasswordHash: hash,
		FullName:     "Campus Administrator",
		Role:         model.RoleSuperAdmin,
	}

	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Created super admin:", admin.Email)
	return nil
}

// SeedCampusSettings creates the default settings sections when absent
func (s *Seeder) SeedCampusSettings() error {
	defaults := []model.CampusSetting{
		{
			Key:         model.SettingHeroSection,
			Description: "Homepage hero content",
			Value: datatypes.JSONMap{
				"title":      "Welcome to Our Campus",
				"subtitle":   "Building the next generation of professionals",
				"hero_image": "",
			},
		},
		{
			Key:         model.SettingContactInfo,
			Description: "Public contact details",
			Value: datatypes.JSONMap{
				"address": "Jl. Pendidikan No. 1",
				"phone":   "(021) 555-0100",
				"email":   "info@campus.ac.id",
			},
		},
		{
			Key:         model.SettingStats,
			Description: "Homepage statistics counters",
			Value: datatypes.JSONMap{
				"active_students":     1200,
				"qualified_lecturers": 85,
				"research_projects":   40,
				"graduation_rate":     97,
			},
		},
		{
			Key:         model.SettingVisionMission,
			Description: "Vision and mission statements",
			Value: datatypes.JSONMap{
				"vision":   "To become a leading institution in applied sciences.",
				"missions": []interface{}{"Deliver quality education", "Advance applied research", "Serve the community"},
			},
		},
	}

	for _, setting := range defaults {
		var count int64
		s.db.Model(&model.CampusSetting{}).Where("setting_key = ?", setting.Key).Count(&count)
		if count > 0 {
			continue
		}
		if err := s.db.Create(&setting).Error; err != nil {
			return err
		}
		log.Println("Seeded campus setting:", setting.Key)
	}

	return nil
}

// SeedPrograms creates starter study programs
func (s *Seeder) SeedPrograms() error {
	var count int64
	s.db.Model(&model.Program{}).Count(&count)
	if count > 0 {
		return nil
	}

	programs := []model.Program{
		{Name: "Informatics Engineering", Accreditation: "B", Description: "Software engineering, data, and intelligent systems.", IsActive: true},
		{Name: "Information Systems", Accreditation: "B", Description: "Business process analysis and enterprise systems.", IsActive: true},
	}

	for _, p := range programs {
		if err := s.db.Create(&p).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded study programs")
	return nil
}

// SeedCalendar creates a starter academic calendar entry
func (s *Seeder) SeedCalendar() error {
	var count int64
	s.db.Model(&model.CalendarEvent{}).Count(&count)
	if count > 0 {
		return nil
	}

	start := time.Date(time.Now().Year(), time.September, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	event := model.CalendarEvent{
		Title:       "New Student Orientation",
		Description: "Orientation week for incoming students",
		EventType:   "academic",
		StartDate:   start,
		EndDate:     &end,
		IsActive:    true,
	}

	if err := s.db.Create(&event).Error; err != nil {
		return err
	}

	log.Println("Seeded academic calendar")
	return nil
}
