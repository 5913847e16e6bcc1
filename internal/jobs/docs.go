// Package jobs provides scheduled background tasks for the fleet service.
//
// Jobs run on github.com/robfig/cron/v3 schedules and are coordinated by
// JobManager:
//
//  1. AssignmentMatchingJob - runs every second, matching the oldest pending
//     assignment with available resources
//  2. LicenseExpiryJob - runs hourly, deactivating drivers whose licenses
//     have expired
//
// Usage:
//
//	jobManager := jobs.NewJobManager(matchHandler, expiryHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The matching job treats an empty backlog and an exhausted candidate pool as
// normal outcomes and stays quiet about them; everything else is logged.
package jobs
