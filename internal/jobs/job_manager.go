package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	customerSummaryJob *CustomerSummaryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	refreshCustomersHandler RefreshCustomersHandler,
	customerRefreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		customerSummaryJob: NewCustomerSummaryJob(refreshCustomersHandler, customerRefreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.customerSummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start customer summary job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.customerSummaryJob.Stop()
}
