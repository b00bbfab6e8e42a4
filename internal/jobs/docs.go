// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the storefront's shipping core.
//
// # Available Jobs
//
// 1. TrackingPollJob - Polls carrier tracking feeds for every labeled,
// still-unlocked order and dispatches scan detection on each feed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(orderRepo, trackingClient, recordScanHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The poll schedule is a six-field cron expression (seconds first), supplied
// through configuration. The default "0 */5 * * * *" polls every five minutes,
// frequent enough that a package is almost always locked before staff could
// plausibly regenerate its label after a pickup.
//
// # Error Handling
//
//   - Polls for different orders are independent: one failed carrier call or
//     persistence error is logged and the cycle continues.
//   - A missed detection is retried on the next cycle; the write-once lock
//     makes repeated detections idempotent.
package jobs
