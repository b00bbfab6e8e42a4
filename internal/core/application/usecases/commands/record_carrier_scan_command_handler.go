package commands

import (
	"context"
	"errors"
	"time"

	"printship/internal/core/domain/model/order"
	"printship/internal/pkg/errs"
)

// RecordCarrierScanCommandHandler inspects a tracking feed for evidence that
// the carrier took physical possession, and sets the order's write-once lock
// when it finds any.
//
// The handler is the single choke point for populating the lock field; no
// other code path writes it. The flag is copied into this system's own
// storage because carriers discard tracking history after roughly 120 days,
// long before order records are purged.
type RecordCarrierScanCommandHandler struct {
	uowFactory OrderUoWFactory
	matcher    order.PossessionMatcher
	now        func() time.Time
}

// NewRecordCarrierScanCommandHandler creates a scan-detection handler using
// the given possession matcher (NewPossessionMatcher() for the defaults).
func NewRecordCarrierScanCommandHandler(
	uowFactory OrderUoWFactory,
	matcher order.PossessionMatcher,
) RecordCarrierScanCommandHandler {
	return RecordCarrierScanCommandHandler{
		uowFactory: uowFactory,
		matcher:    matcher,
		now:        time.Now,
	}
}

// Handle processes one tracking number's activity feed.
//
// Unknown tracking numbers are a silent no-op: polls may reference shipments
// this system never issued. Already-locked orders are a no-op as well, so
// repeated detections are idempotent. A persistence failure is returned to
// the caller for logging; the detection is retried on the next poll, which
// is why a missed lock is tolerable while a spurious unlock never is.
func (h *RecordCarrierScanCommandHandler) Handle(ctx context.Context, cmd RecordCarrierScanCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	statuses := make([]string, 0, len(cmd.Activities()))
	for _, activity := range cmd.Activities() {
		statuses = append(statuses, activity.StatusDescription)
	}

	if !h.matcher.MatchesAny(statuses) {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	locked, err := aggregate.RecordCarrierScan(h.now())
	if err != nil {
		return err
	}
	if !locked {
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
