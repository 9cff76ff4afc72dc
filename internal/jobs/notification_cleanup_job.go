package jobs

import (
	"context"
	"log/slog"

	"meatdelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type notificationPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredNotificationsCommand) (int64, error)
}

// NotificationCleanupJob removes expired inbox notifications on a cron
// schedule (six fields, seconds first).
type NotificationCleanupJob struct {
	handler  notificationPurger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewNotificationCleanupJob(handler notificationPurger, schedule string, logger *slog.Logger) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_cleanup_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *NotificationCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification cleanup job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running purge to finish.
func (j *NotificationCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification cleanup job stopped")
}

func (j *NotificationCleanupJob) run(ctx context.Context) {
	deleted, err := j.handler.Handle(ctx, commands.NewPurgeExpiredNotificationsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification cleanup job failed", "error", err)
		return
	}
	if deleted > 0 {
		j.logger.InfoContext(ctx, "Expired notifications removed", "deleted", deleted)
	}
}
