package queries

import (
	"errors"
	"fmt"
	"time"

	"printship/internal/pkg/guard"
)

var (
	ErrGetShipmentStatusQueryIsNotConstructed = errors.New(
		"GetShipmentStatusQuery must be created via NewGetShipmentStatusQuery constructor",
	)
	ErrShipmentStatusOrderIDIsInvalid = errors.New("order id must be positive")
)

// GetShipmentStatusQuery retrieves the shipping state of a single order:
// label status, tracking number, and whether the carrier has already scanned
// the package. The dashboard uses the response to decide whether to render a
// "Regenerate Label" button or a locked banner.
//
// Example:
//
//	query, err := NewGetShipmentStatusQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipment status: %w", err)
//	}
//
//	if !status.CanRegenerateLabel {
//	    fmt.Printf("order %d locked since %s\n", status.OrderID, status.FirstCarrierScanAt)
//	}
type GetShipmentStatusQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetShipmentStatusQuery creates a shipment status query for an order.
func NewGetShipmentStatusQuery(orderID int64) (GetShipmentStatusQuery, error) {
	if orderID <= 0 {
		return GetShipmentStatusQuery{}, fmt.Errorf("%w: %d", ErrShipmentStatusOrderIDIsInvalid, orderID)
	}

	return GetShipmentStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being inspected.
func (q GetShipmentStatusQuery) OrderID() int64 {
	return q.orderID
}

// GetShipmentStatusQueryResponse describes one order's shipping state.
// ShipmentState is one of "no_label", "label_created", "locked".
type GetShipmentStatusQueryResponse struct {
	OrderID            int64      `json:"order_id"`
	OrderNumber        string     `json:"order_number"`
	LabelStatus        string     `json:"label_status"`
	ShipmentState      string     `json:"shipment_state"`
	TrackingNumber     *string    `json:"tracking_number"`
	LabelURL           *string    `json:"label_url"`
	FirstCarrierScanAt *time.Time `json:"first_carrier_scan_at"`
	CanRegenerateLabel bool       `json:"can_regenerate_label"`
}
