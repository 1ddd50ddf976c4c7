// Package jobs provides scheduled background tasks of the bakery service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the
// schedule.
//
// # Available Jobs
//
// 1. CustomerSummaryJob - aggregates orders by phone into the customers
// table (latest name and address, order count, last order time). It runs
// every minute unless CUSTOMER_REFRESH_SCHEDULE says otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&refreshCustomersHandler, cfg.CustomerRefreshSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. A schedule that does
// not parse makes StartAll fail.
package jobs
