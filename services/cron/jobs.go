package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/vee-grants/vee-api/model"
)

const (
	purgeAuditLogsJob   = "purge_audit_logs"
	purgeCronJobLogsJob = "purge_cron_job_logs"

	cronJobLogRetention = 90 * 24 * time.Hour
)

// PurgeAuditLogs removes audit records older than the retention window
func (m *CronManager) PurgeAuditLogs() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	startedAt := m.now()
	id := m.logJobStart(purgeAuditLogsJob)

	cutoff := startedAt.Add(-m.retention)
	deleted, err := m.audit.PurgeBefore(ctx, cutoff)
	if err != nil {
		m.logJobError(id, purgeAuditLogsJob, startedAt, fmt.Errorf("failed to purge audit logs: %w", err))
		return
	}

	m.logJobComplete(id, purgeAuditLogsJob, startedAt,
		fmt.Sprintf("Deleted %d audit logs created before %s", deleted, cutoff.Format(time.RFC3339)))
}

// PurgeCronJobLogs removes finished job logs older than 90 days
func (m *CronManager) PurgeCronJobLogs() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	startedAt := m.now()
	id := m.logJobStart(purgeCronJobLogsJob)

	result := m.db.WithContext(ctx).
		Where("created_at < ? AND status <> ?", startedAt.Add(-cronJobLogRetention), model.CronJobRunning).
		Delete(&model.CronJobLog{})
	if result.Error != nil {
		m.logJobError(id, purgeCronJobLogsJob, startedAt, fmt.Errorf("failed to purge cron job logs: %w", result.Error))
		return
	}

	m.logJobComplete(id, purgeCronJobLogsJob, startedAt, fmt.Sprintf("Deleted %d cron job logs", result.RowsAffected))
}
