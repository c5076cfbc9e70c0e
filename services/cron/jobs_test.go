package cron

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vee-grants/vee-api/database/dbtest"
	"github.com/vee-grants/vee-api/model"
)

func TestPurgeAuditLogs(t *testing.T) {
	db := dbtest.New(t).GetDB()
	now := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)

	m := NewCronManager(db, 30)
	m.now = func() time.Time { return now }

	for _, age := range []time.Duration{45 * 24 * time.Hour, 31 * 24 * time.Hour, 24 * time.Hour} {
		require.NoError(t, db.Create(&model.AuditLog{
			UserID:    uuid.New(),
			Operation: "createGrant",
			Resource:  "grants",
			CreatedAt: now.Add(-age),
		}).Error)
	}

	m.PurgeAuditLogs()

	var remaining int64
	require.NoError(t, db.Model(&model.AuditLog{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	var runs []model.CronJobLog
	require.NoError(t, db.Where("job_name = ?", purgeAuditLogsJob).Find(&runs).Error)
	require.Len(t, runs, 1)
	assert.Equal(t, model.CronJobCompleted, runs[0].Status)
	assert.NotNil(t, runs[0].CompletedAt)
	assert.Contains(t, runs[0].Message, "Deleted 2 audit logs")
}

func TestPurgeCronJobLogsKeepsRunningJobs(t *testing.T) {
	db := dbtest.New(t).GetDB()
	now := time.Date(2025, 6, 1, 4, 0, 0, 0, time.UTC)

	m := NewCronManager(db, 90)
	m.now = func() time.Time { return now }

	old := now.Add(-120 * 24 * time.Hour)
	require.NoError(t, db.Create(&model.CronJobLog{JobName: "old", Status: model.CronJobCompleted, StartedAt: old, CreatedAt: old}).Error)
	require.NoError(t, db.Create(&model.CronJobLog{JobName: "stuck", Status: model.CronJobRunning, StartedAt: old, CreatedAt: old}).Error)

	m.PurgeCronJobLogs()

	var names []string
	require.NoError(t, db.Model(&model.CronJobLog{}).Order("id").Pluck("job_name", &names).Error)
	assert.Equal(t, []string{"stuck", purgeCronJobLogsJob}, names)
}

func TestRegisterJobs(t *testing.T) {
	m := NewCronManager(dbtest.New(t).GetDB(), 90)

	require.NoError(t, m.registerJobs())
	assert.Len(t, m.cron.Entries(), 2)
}
