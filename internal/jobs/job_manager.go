package jobs

import (
	"fmt"
	"log/slog"

	"printship/internal/core/application/usecases/commands"
	"printship/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	trackingPollJob *TrackingPollJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	orders ports.OrderRepository,
	trackingClient ports.CarrierTrackingClient,
	recordScanHandler commands.RecordCarrierScanCommandHandler,
	pollSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		trackingPollJob: NewTrackingPollJob(orders, trackingClient, recordScanHandler, pollSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.trackingPollJob.Start(); err != nil {
		return fmt.Errorf("failed to start tracking poll job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingPollJob.Stop()
}
