// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the order workflow.
//
// # Available Jobs
//
// 1. DeliveryDispatchJob - Periodically sweeps ready delivery orders and
// sends them out for delivery, so the kitchen never has to trigger
// dispatch by hand.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(uowFactory, startDeliveryHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job treats a missing delivery record and a lost transition
// race as expected business scenarios and only logs them; everything else
// is reported as a system error.
package jobs
