// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// DispatchJob periodically collects paid orders that have no pending or
// accepted assignment and offers each to an eligible driver through the
// assignment command handler.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, assignDriverHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job treats "no eligible drivers" and assignment conflicts as
// expected between ticks and does not log them. Everything else indicates a
// system issue and is logged.
package jobs
