package commands

import (
	"context"

	"printship/internal/core/ports"
	"printship/internal/pkg/errs"
)

// CreateShippingLabelResult carries the new label's identifiers back to the
// dashboard.
type CreateShippingLabelResult struct {
	TrackingNumber    string
	CarrierShipmentID string
	LabelURL          string
}

// CreateShippingLabelCommandHandler purchases a label from the carrier and
// records it on the order.
//
// The handler enforces the lock gate: an order the carrier has already
// scanned is refused with a ShipmentLockedError before any carrier call is
// made. The lock check and the tracking-number write happen inside one
// transaction with the order row locked, so concurrent creations (or a
// concurrent scan detection) on the same order cannot interleave.
type CreateShippingLabelCommandHandler struct {
	uowFactory  OrderUoWFactory
	labelClient ports.CarrierLabelClient
}

// NewCreateShippingLabelCommandHandler creates a handler for label creation.
// Requires a unit of work factory and the carrier label client.
func NewCreateShippingLabelCommandHandler(
	uowFactory OrderUoWFactory,
	labelClient ports.CarrierLabelClient,
) CreateShippingLabelCommandHandler {
	return CreateShippingLabelCommandHandler{
		uowFactory:  uowFactory,
		labelClient: labelClient,
	}
}

// Handle processes the label creation command.
//
// Precondition order matters: the order must exist (ObjectNotFoundError),
// then must not be locked (ShipmentLockedError). Only then is the carrier
// called; a carrier failure surfaces as UpstreamFailureError with no state
// change, because nothing is written until the carrier responded.
func (h *CreateShippingLabelCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShippingLabelCommand,
) (CreateShippingLabelResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateShippingLabelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateShippingLabelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CreateShippingLabelResult{}, err
	}

	// Hard gate: never reach the carrier API for a locked shipment.
	if aggregate.IsLocked() {
		locked := ""
		if tn := aggregate.TrackingNumber(); tn != nil {
			locked = *tn
		}
		return CreateShippingLabelResult{}, errs.NewShipmentLockedError(aggregate.ID(), locked)
	}

	created, err := h.labelClient.CreateLabel(ctx, ports.LabelRequest{
		OrderNumber:     aggregate.OrderNumber(),
		ShippingMethod:  aggregate.ShippingMethod(),
		Quantity:        aggregate.Quantity(),
		UnitWeightGrams: aggregate.UnitWeightGrams(),
	})
	if err != nil {
		return CreateShippingLabelResult{}, err
	}

	if err = aggregate.AssignLabel(created.TrackingNumber, created.CarrierShipmentID, created.LabelURL); err != nil {
		return CreateShippingLabelResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return CreateShippingLabelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateShippingLabelResult{}, err
	}

	return CreateShippingLabelResult{
		TrackingNumber:    created.TrackingNumber,
		CarrierShipmentID: created.CarrierShipmentID,
		LabelURL:          created.LabelURL,
	}, nil
}
