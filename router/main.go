package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/akademika/campus-api/database"
	activity_handlers "github.com/akademika/campus-api/handlers/activity"
	admin_handlers "github.com/akademika/campus-api/handlers/admin"
	announcement_handlers "github.com/akademika/campus-api/handlers/announcement"
	auth_handlers "github.com/akademika/campus-api/handlers/auth"
	calendar_handlers "github.com/akademika/campus-api/handlers/calendar"
	download_handlers "github.com/akademika/campus-api/handlers/download"
	gallery_handlers "github.com/akademika/campus-api/handlers/gallery"
	laboratory_handlers "github.com/akademika/campus-api/handlers/laboratory"
	lecturer_handlers "github.com/akademika/campus-api/handlers/lecturer"
	news_handlers "github.com/akademika/campus-api/handlers/news"
	orgstructure_handlers "github.com/akademika/campus-api/handlers/orgstructure"
	program_handlers "github.com/akademika/campus-api/handlers/program"
	settings_handlers "github.com/akademika/campus-api/handlers/settings"
	"github.com/akademika/campus-api/services/settings"
	"github.com/akademika/campus-api/services/storage"
	"github.com/akademika/campus-api/utils/auth"
	"github.com/akademika/campus-api/utils/cache"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "campus-api"
	}

	jwtConfig := auth.JWTConfig{
		Secret:        jwtSecret,
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Redis backs brute force protection and the public settings cache.
	// The API still serves without it, just slower and unguarded.
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection and settings cache will be disabled.", err)
	}

	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)

	settingsService := settings.NewService(db, redisCache)
	publicSettingsHandler := settings_handlers.NewSettingsHandler(settingsService)
	adminSettingsHandler := admin_handlers.NewSettingsHandler(settingsService)

	// Object storage is optional in local development
	var spacesClient *storage.SpacesClient
	if os.Getenv("SPACES_ACCESS_KEY") != "" {
		spacesClient, err = storage.NewSpacesClient(storage.SpacesConfig{
			AccessKey: os.Getenv("SPACES_ACCESS_KEY"),
			SecretKey: os.Getenv("SPACES_SECRET_KEY"),
			Bucket:    os.Getenv("SPACES_BUCKET"),
			Region:    os.Getenv("SPACES_REGION"),
			Endpoint:  os.Getenv("SPACES_ENDPOINT"),
			CDNURL:    os.Getenv("SPACES_CDN_URL"),
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize object storage: %v. Media uploads will be disabled.", err)
		}
	}
	mediaHandler := admin_handlers.NewMediaHandler(spacesClient)

	programHandler := program_handlers.NewProgramHandler(db)
	newsHandler := news_handlers.NewNewsHandler(db)
	galleryHandler := gallery_handlers.NewGalleryHandler(db)
	announcementHandler := announcement_handlers.NewAnnouncementHandler(db)
	lecturerHandler := lecturer_handlers.NewLecturerHandler(db)
	downloadHandler := download_handlers.NewDownloadHandler(db)
	calendarHandler := calendar_handlers.NewCalendarHandler(db)
	orgHandler := orgstructure_handlers.NewOrgStructureHandler(db)
	laboratoryHandler := laboratory_handlers.NewLaboratoryHandler(db)
	activityHandler := activity_handlers.NewActivityHandler(db)

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:5173"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,
		RateLimitWindow:   1 * time.Minute,
	})

	app.Get("/ping", func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return response.Error(c, fiber.StatusServiceUnavailable, "Database is unreachable", "UNHEALTHY")
		}
		return response.Success(c, fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)

	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckLocked(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)

	profileGroup := api.Group("/profile", authMiddleware.Required())
	profileGroup.Get("/", authHandler.GetProfile)
	profileGroup.Put("/", authHandler.UpdateProfile)

	// Public content routes. Optional auth lets admins see unpublished rows
	// through the same endpoints the site uses.
	public := api.Group("/", authMiddleware.Optional())

	public.Get("/settings", publicSettingsHandler.ListSettings)
	public.Get("/settings/:key", publicSettingsHandler.GetSetting)

	public.Get("/programs", programHandler.ListPrograms)
	public.Get("/programs/:id", programHandler.GetProgram)

	public.Get("/news", newsHandler.ListNews)
	public.Get("/news/:id", newsHandler.GetNews)

	public.Get("/gallery", galleryHandler.ListGallery)
	public.Get("/gallery/:id", galleryHandler.GetGalleryItem)

	public.Get("/announcements", announcementHandler.ListAnnouncements)
	public.Get("/announcements/:id", announcementHandler.GetAnnouncement)

	public.Get("/lecturers", lecturerHandler.ListLecturers)
	public.Get("/lecturers/:id", lecturerHandler.GetLecturer)

	public.Get("/downloads", downloadHandler.ListDownloads)
	public.Get("/downloads/:id", downloadHandler.GetDownload)
	public.Post("/downloads/:id/download", downloadHandler.RecordDownload)

	public.Get("/calendar", calendarHandler.ListEvents)
	public.Get("/calendar/:id", calendarHandler.GetEvent)

	public.Get("/organizational-structure", orgHandler.ListOrgUnits)
	public.Get("/organizational-structure/:id", orgHandler.GetOrgUnit)

	public.Get("/laboratories", laboratoryHandler.ListLaboratories)
	public.Get("/laboratories/:id", laboratoryHandler.GetLaboratory)

	public.Get("/student-activities", activityHandler.ListActivities)
	public.Get("/student-activities/:id", activityHandler.GetActivity)

	// Admin surface. Every route re-checks the role against the profile row;
	// mutations are recorded in the audit trail.
	adminGroup := api.Group("/admin", authMiddleware.RequireAdmin())

	adminGroup.Get("/dashboard", func(c *fiber.Ctx) error {
		return admin_handlers.GetDashboard(c, db)
	})

	adminGroup.Get("/users", func(c *fiber.Ctx) error {
		return admin_handlers.ListUsers(c, db)
	})
	adminGroup.Put("/users/:id/role", middleware.AuditLog(db, "user_role_update", "users"), func(c *fiber.Ctx) error {
		return admin_handlers.UpdateUserRole(c, db)
	})
	adminGroup.Delete("/users/:id", middleware.AuditLog(db, "user_delete", "users"), func(c *fiber.Ctx) error {
		return admin_handlers.DeleteUser(c, db)
	})

	adminGroup.Get("/audit-logs", func(c *fiber.Ctx) error {
		return admin_handlers.ListAuditLogs(c, db)
	})

	adminGroup.Get("/settings", adminSettingsHandler.ListSettings)
	adminGroup.Get("/settings/:key", adminSettingsHandler.GetSetting)
	adminGroup.Put("/settings/:key", middleware.AuditLog(db, "setting_update", "settings"), adminSettingsHandler.SaveSection)

	adminGroup.Post("/media/images", middleware.AuditLog(db, "media_upload", "media"), mediaHandler.UploadImage)
	adminGroup.Post("/media/documents", middleware.AuditLog(db, "media_upload", "media"), mediaHandler.UploadDocument)
	adminGroup.Get("/media", mediaHandler.ListMedia)
	adminGroup.Delete("/media", middleware.AuditLog(db, "media_delete", "media"), mediaHandler.DeleteMedia)

	adminGroup.Post("/programs", middleware.AuditLog(db, "program_create", "programs"), programHandler.CreateProgram)
	adminGroup.Put("/programs/:id", middleware.AuditLog(db, "program_update", "programs"), programHandler.UpdateProgram)
	adminGroup.Patch("/programs/:id/toggle", middleware.AuditLog(db, "program_toggle", "programs"), programHandler.ToggleProgram)
	adminGroup.Delete("/programs/:id", middleware.AuditLog(db, "program_delete", "programs"), programHandler.DeleteProgram)

	adminGroup.Post("/news", middleware.AuditLog(db, "news_create", "news"), newsHandler.CreateNews)
	adminGroup.Put("/news/:id", middleware.AuditLog(db, "news_update", "news"), newsHandler.UpdateNews)
	adminGroup.Patch("/news/:id/toggle", middleware.AuditLog(db, "news_toggle", "news"), newsHandler.ToggleNews)
	adminGroup.Delete("/news/:id", middleware.AuditLog(db, "news_delete", "news"), newsHandler.DeleteNews)

	adminGroup.Post("/gallery", middleware.AuditLog(db, "gallery_create", "gallery"), galleryHandler.CreateGalleryItem)
	adminGroup.Put("/gallery/:id", middleware.AuditLog(db, "gallery_update", "gallery"), galleryHandler.UpdateGalleryItem)
	adminGroup.Patch("/gallery/:id/toggle", middleware.AuditLog(db, "gallery_toggle", "gallery"), galleryHandler.ToggleGalleryItem)
	adminGroup.Delete("/gallery/:id", middleware.AuditLog(db, "gallery_delete", "gallery"), galleryHandler.DeleteGalleryItem)

	adminGroup.Post("/announcements", middleware.AuditLog(db, "announcement_create", "announcements"), announcementHandler.CreateAnnouncement)
	adminGroup.Put("/announcements/:id", middleware.AuditLog(db, "announcement_update", "announcements"), announcementHandler.UpdateAnnouncement)
	adminGroup.Patch("/announcements/:id/toggle", middleware.AuditLog(db, "announcement_toggle", "announcements"), announcementHandler.ToggleAnnouncement)
	adminGroup.Delete("/announcements/:id", middleware.AuditLog(db, "announcement_delete", "announcements"), announcementHandler.DeleteAnnouncement)

	adminGroup.Post("/lecturers", middleware.AuditLog(db, "lecturer_create", "lecturers"), lecturerHandler.CreateLecturer)
	adminGroup.Put("/lecturers/:id", middleware.AuditLog(db, "lecturer_update", "lecturers"), lecturerHandler.UpdateLecturer)
	adminGroup.Patch("/lecturers/:id/toggle", middleware.AuditLog(db, "lecturer_toggle", "lecturers"), lecturerHandler.ToggleLecturer)
	adminGroup.Delete("/lecturers/:id", middleware.AuditLog(db, "lecturer_delete", "lecturers"), lecturerHandler.DeleteLecturer)

	adminGroup.Post("/downloads", middleware.AuditLog(db, "download_create", "downloads"), downloadHandler.CreateDownload)
	adminGroup.Put("/downloads/:id", middleware.AuditLog(db, "download_update", "downloads"), downloadHandler.UpdateDownload)
	adminGroup.Patch("/downloads/:id/toggle", middleware.AuditLog(db, "download_toggle", "downloads"), downloadHandler.ToggleDownload)
	adminGroup.Delete("/downloads/:id", middleware.AuditLog(db, "download_delete", "downloads"), downloadHandler.DeleteDownload)

	adminGroup.Post("/calendar", middleware.AuditLog(db, "calendar_create", "calendar"), calendarHandler.CreateEvent)
	adminGroup.Put("/calendar/:id", middleware.AuditLog(db, "calendar_update", "calendar"), calendarHandler.UpdateEvent)
	adminGroup.Patch("/calendar/:id/toggle", middleware.AuditLog(db, "calendar_toggle", "calendar"), calendarHandler.ToggleEvent)
	adminGroup.Delete("/calendar/:id", middleware.AuditLog(db, "calendar_delete", "calendar"), calendarHandler.DeleteEvent)

	adminGroup.Post("/organizational-structure", middleware.AuditLog(db, "org_unit_create", "organizational_structure"), orgHandler.CreateOrgUnit)
	adminGroup.Put("/organizational-structure/:id", middleware.AuditLog(db, "org_unit_update", "organizational_structure"), orgHandler.UpdateOrgUnit)
	adminGroup.Patch("/organizational-structure/:id/toggle", middleware.AuditLog(db, "org_unit_toggle", "organizational_structure"), orgHandler.ToggleOrgUnit)
	adminGroup.Delete("/organizational-structure/:id", middleware.AuditLog(db, "org_unit_delete", "organizational_structure"), orgHandler.DeleteOrgUnit)

	adminGroup.Post("/laboratories", middleware.AuditLog(db, "laboratory_create", "laboratories"), laboratoryHandler.CreateLaboratory)
	adminGroup.Put("/laboratories/:id", middleware.AuditLog(db, "laboratory_update", "laboratories"), laboratoryHandler.UpdateLaboratory)
	adminGroup.Patch("/laboratories/:id/toggle", middleware.AuditLog(db, "laboratory_toggle", "laboratories"), laboratoryHandler.ToggleLaboratory)
	adminGroup.Delete("/laboratories/:id", middleware.AuditLog(db, "laboratory_delete", "laboratories"), laboratoryHandler.DeleteLaboratory)

	adminGroup.Post("/student-activities", middleware.AuditLog(db, "activity_create", "student_activities"), activityHandler.CreateActivity)
	adminGroup.Put("/student-activities/:id", middleware.AuditLog(db, "activity_update", "student_activities"), activityHandler.UpdateActivity)
	adminGroup.Patch("/student-activities/:id/toggle", middleware.AuditLog(db, "activity_toggle", "student_activities"), activityHandler.ToggleActivity)
	adminGroup.Delete("/student-activities/:id", middleware.AuditLog(db, "activity_delete", "student_activities"), activityHandler.DeleteActivity)
}
