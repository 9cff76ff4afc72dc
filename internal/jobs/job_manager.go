package jobs

import (
	"fmt"
	"log/slog"

	"meatdelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	notificationCleanupJob *NotificationCleanupJob
}

func NewJobManager(
	purgeHandler commands.PurgeExpiredNotificationsCommandHandler,
	cleanupSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationCleanupJob: NewNotificationCleanupJob(purgeHandler, cleanupSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification cleanup job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.notificationCleanupJob.Stop()
}
