// Package jobs provides scheduled background tasks for the dashboard backend.
//
// Jobs are cron based (github.com/robfig/cron/v3, six field expressions with
// seconds) and log through log/slog with a "component" attribute.
//
// # Available Jobs
//
// 1. RequestSyncJob - refreshes the request list from the remote API
// 2. HandoffExpiryJob - abandons locker handoffs left unconfirmed past their TTL
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshHandler, expireHandler, jobs.Schedules{
//		RequestSync:   "0 */5 * * * *",
//		HandoffExpiry: "0 * * * * *",
//		HandoffTTL:    15 * time.Minute,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The sync job skips quietly while no session token is configured
// - Remote and database failures are logged and retried on the next tick only
// - Failed job starts stop any already running jobs
package jobs
