package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Schedules holds the cron expressions (with seconds) of the jobs.
type Schedules struct {
	RequestSync   string
	HandoffExpiry string
	HandoffTTL    time.Duration
}

// JobManager starts and stops all scheduled jobs together.
type JobManager struct {
	requestSyncJob   *RequestSyncJob
	handoffExpiryJob *HandoffExpiryJob
}

func NewJobManager(
	refreshHandler RequestsRefresher,
	expireHandler HandoffExpirer,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		requestSyncJob:   NewRequestSyncJob(refreshHandler, schedules.RequestSync, logger),
		handoffExpiryJob: NewHandoffExpiryJob(expireHandler, schedules.HandoffExpiry, schedules.HandoffTTL, logger),
	}
}

// StartAll starts all jobs. A job that fails to start stops the ones
// already running.
func (jm *JobManager) StartAll() error {
	if err := jm.handoffExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start handoff expiry job: %w", err)
	}

	if err := jm.requestSyncJob.Start(); err != nil {
		jm.handoffExpiryJob.Stop()
		return fmt.Errorf("failed to start request sync job: %w", err)
	}

	return nil
}

// StopAll waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	jm.requestSyncJob.Stop()
	jm.handoffExpiryJob.Stop()
}
