// Package jobs holds the cron-driven background work of the service, built
// on github.com/robfig/cron/v3 with second-resolution schedules.
//
// NotificationCleanupJob deletes inbox notifications whose expiry has passed.
// Its schedule comes from NOTIFICATION_CLEANUP_SCHEDULE and defaults to
// "0 0 3 * * *" (daily at 03:00).
//
// Jobs are started and stopped together through JobManager:
//
//	jobManager := compositionRoot.CreateJobManager()
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A failed run is logged and retried at the next tick.
package jobs
