package jobs

import (
	"context"
	"log/slog"

	"bakery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultCustomerRefreshSchedule runs the refresh at second 0 of every minute.
const DefaultCustomerRefreshSchedule = "0 * * * * *"

// RefreshCustomersHandler rebuilds the customers table from orders.
type RefreshCustomersHandler interface {
	Handle(ctx context.Context, cmd commands.RefreshCustomersCommand) (int, error)
}

// CustomerSummaryJob keeps the customers table in step with orders.
type CustomerSummaryJob struct {
	handler  RefreshCustomersHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCustomerSummaryJob creates the job. An empty schedule falls back to
// DefaultCustomerRefreshSchedule; schedules have a seconds field.
func NewCustomerSummaryJob(handler RefreshCustomersHandler, schedule string, logger *slog.Logger) *CustomerSummaryJob {
	if schedule == "" {
		schedule = DefaultCustomerRefreshSchedule
	}
	return &CustomerSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "customer_summary_job"),
	}
}

// Start schedules the refresh.
func (j *CustomerSummaryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Customer summary job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *CustomerSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Customer summary job stopped")
}

func (j *CustomerSummaryJob) run() {
	ctx := context.Background()

	count, err := j.handler.Handle(ctx, commands.NewRefreshCustomersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Customer summary job failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Customers refreshed", "customers", count)
}
