package cron

import (
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"
	"github.com/vee-grants/vee-api/model"
	"github.com/vee-grants/vee-api/services"
	"gorm.io/gorm"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron      *cron.Cron
	db        *gorm.DB
	audit     *services.AuditService
	retention time.Duration
	now       func() time.Time
}

// NewCronManager creates a new cron manager. Audit records older than
// retentionDays are purged daily.
func NewCronManager(db *gorm.DB, retentionDays int) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:      c,
		db:        db,
		audit:     services.NewAuditService(db),
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Info("⏰ Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Info("✅ Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs and waits for running ones to finish
func (m *CronManager) Stop() {
	log.Info("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Info("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Daily at 3 AM: Purge expired audit records
	if _, err := m.cron.AddFunc("0 0 3 * * *", m.PurgeAuditLogs); err != nil {
		return err
	}

	// Weekly on Sunday at 4 AM: Purge old cron job logs
	if _, err := m.cron.AddFunc("0 0 4 * * 0", m.PurgeCronJobLogs); err != nil {
		return err
	}

	log.Info("All cron jobs registered successfully")
	return nil
}

// logJobStart records a running job and returns its log id
func (m *CronManager) logJobStart(jobName string) uint {
	startedAt := m.now()
	log.Infof("[CRON] Starting job: %s at %s", jobName, startedAt.Format(time.RFC3339))

	cronLog := model.CronJobLog{
		JobName:   jobName,
		Status:    model.CronJobRunning,
		StartedAt: startedAt,
	}
	if err := m.db.Create(&cronLog).Error; err != nil {
		log.Errorw("[CRON] Failed to record job start", "job", jobName, "error", err)
		return 0
	}
	return cronLog.ID
}

// logJobComplete marks the job log as completed
func (m *CronManager) logJobComplete(id uint, jobName string, startedAt time.Time, message string) {
	log.Infof("[CRON] Completed job: %s - %s", jobName, message)
	m.finishJob(id, startedAt, map[string]interface{}{
		"status":  model.CronJobCompleted,
		"message": message,
	})
}

// logJobError marks the job log as failed
func (m *CronManager) logJobError(id uint, jobName string, startedAt time.Time, err error) {
	log.Errorw("[CRON] Error in job", "job", jobName, "error", err)
	m.finishJob(id, startedAt, map[string]interface{}{
		"status":    model.CronJobFailed,
		"error_msg": err.Error(),
	})
}

func (m *CronManager) finishJob(id uint, startedAt time.Time, updates map[string]interface{}) {
	if id == 0 {
		return
	}

	completedAt := m.now()
	updates["completed_at"] = completedAt
	updates["duration"] = completedAt.Sub(startedAt).Milliseconds()

	if err := m.db.Model(&model.CronJobLog{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		log.Errorw("[CRON] Failed to record job result", "id", id, "error", err)
	}
}
