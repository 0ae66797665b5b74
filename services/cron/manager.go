package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronManager manages all scheduled maintenance jobs
type CronManager struct {
	cron *cron.Cron
	db   *gorm.DB
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB) *CronManager {
	return &CronManager{
		cron: cron.New(),
		db:   db,
	}
}

// Start registers all jobs and starts the scheduler
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs and waits for running ones to finish
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Hourly: remove blacklist entries whose tokens have expired anyway
	_, err := m.cron.AddFunc("@hourly", func() {
		log.Println("[cron] cleanup_expired_blacklist")
		m.CleanupExpiredBlacklist()
	})
	if err != nil {
		return err
	}

	// Daily: trim old admin audit log entries
	_, err = m.cron.AddFunc("@daily", func() {
		log.Println("[cron] trim_audit_logs")
		m.TrimAuditLogs()
	})
	return err
}
