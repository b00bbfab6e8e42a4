package jobs

import (
	"context"
	"log/slog"

	"printship/internal/core/application/usecases/commands"
	"printship/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TrackingPollJob periodically asks the carrier for tracking activity on
// every order that has a label but no first-scan timestamp, and dispatches
// scan detection for each feed. Orders that become locked drop out of the
// candidate list and stop being polled.
type TrackingPollJob struct {
	orders         ports.OrderRepository
	trackingClient ports.CarrierTrackingClient
	handler        commands.RecordCarrierScanCommandHandler
	schedule       string
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewTrackingPollJob creates a job that polls carrier tracking feeds on the
// given cron schedule (with a seconds field, e.g. "0 */5 * * * *").
func NewTrackingPollJob(
	orders ports.OrderRepository,
	trackingClient ports.CarrierTrackingClient,
	handler commands.RecordCarrierScanCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TrackingPollJob {
	return &TrackingPollJob{
		orders:         orders,
		trackingClient: trackingClient,
		handler:        handler,
		schedule:       schedule,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "tracking_poll_job"),
	}
}

// Start begins polling on the configured schedule.
func (j *TrackingPollJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.pollOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking poll job started", "schedule", j.schedule)
	return nil
}

// Stop stops the tracking poll job.
func (j *TrackingPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking poll job stopped")
}

// pollOnce runs a single poll cycle. Each order's poll is independent: a
// carrier failure or persistence error on one tracking number is logged and
// the cycle moves on, so one bad feed cannot starve the rest. Missed
// detections are retried on the next cycle.
func (j *TrackingPollJob) pollOnce(ctx context.Context) {
	awaiting, err := j.orders.GetAllAwaitingScan(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list orders awaiting scan", "error", err)
		return
	}

	for _, o := range awaiting {
		trackingNumber := o.TrackingNumber()
		if trackingNumber == nil {
			continue
		}

		activities, err := j.trackingClient.FetchActivities(ctx, *trackingNumber)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to fetch tracking activities",
				"order_id", o.ID(), "tracking_number", *trackingNumber, "error", err)
			continue
		}

		cmd, err := commands.NewRecordCarrierScanCommand(*trackingNumber, activities)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build scan detection command",
				"order_id", o.ID(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Scan detection failed",
				"order_id", o.ID(), "tracking_number", *trackingNumber, "error", err)
		}
	}
}
