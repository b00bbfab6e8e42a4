package order

import (
	"errors"
	"fmt"
	"time"

	"printship/internal/pkg/errs"
	"printship/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrScanWithoutLabel is returned when a carrier scan is recorded for an
	// order that has no tracking number. A scan cannot precede label creation.
	ErrScanWithoutLabel = errors.New("carrier scan cannot be recorded before a label exists")
)

// ShipmentState is the derived label-lock state of an order. It is computed
// from the tracking number and the first-scan timestamp, never stored.
type ShipmentState int

const (
	// NoLabel means no tracking number has ever been assigned.
	NoLabel ShipmentState = iota

	// Unlocked means a label exists but the carrier has not scanned the
	// package; the label may still be regenerated.
	Unlocked

	// Locked means the carrier has physically scanned the package.
	// Label creation is permanently refused.
	Locked
)

// String returns the dashboard name of the shipment state.
func (s ShipmentState) String() string {
	switch s {
	case NoLabel:
		return "no_label"
	case Unlocked:
		return "label_created"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

// Order is the aggregate root for a storefront order's shipping concerns.
//
// Order maintains these invariants:
//   - id is positive and orderNumber is non-empty
//   - quantity is at least 1 and unitWeightGrams is non-negative
//   - firstCarrierScanAt is non-nil only if trackingNumber is non-nil
//   - firstCarrierScanAt is write-once: RecordCarrierScan is the only method
//     that sets it, and nothing ever clears it
//
// The struct uses private fields to keep the lock timestamp out of reach;
// there is deliberately no setter for firstCarrierScanAt.
type Order struct {
	id          int64
	orderNumber string

	trackingNumber    *string
	carrierShipmentID *string
	labelURL          *string

	firstCarrierScanAt *time.Time
	labelStatus        LabelStatus

	modelLengthMM   *float64
	modelWidthMM    *float64
	modelHeightMM   *float64
	quantity        int
	unitWeightGrams float64
	shippingMethod  string

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with no label and NotCreated status.
//
// Parameters:
//   - id: positive surrogate identifier
//   - orderNumber: human-readable order number (non-empty)
//   - lengthMM, widthMM, heightMM: measured model dimensions, nil when the
//     model has not been measured yet
//   - quantity: units ordered (>= 1)
//   - unitWeightGrams: weight of a single printed unit (>= 0)
//   - shippingMethod: carrier service tier name chosen at checkout
//
// Returns a validation error if any parameter is invalid.
func NewOrder(
	id int64,
	orderNumber string,
	lengthMM, widthMM, heightMM *float64,
	quantity int,
	unitWeightGrams float64,
	shippingMethod string,
) (*Order, error) {
	o := &Order{
		labelStatus: NotCreated,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setQuantity(quantity),
		o.setUnitWeightGrams(unitWeightGrams),
		o.setShippingMethod(shippingMethod),
	); err != nil {
		return nil, err
	}

	o.modelLengthMM = lengthMM
	o.modelWidthMM = widthMM
	o.modelHeightMM = heightMM

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its label
// identifiers and lock timestamp. Unlike NewOrder it accepts any valid
// labelStatus and enforces the cross-field invariants of stored rows:
// a scan timestamp requires a tracking number, and a Shipped status requires
// a scan timestamp.
func RestoreOrder(
	id int64,
	orderNumber string,
	trackingNumber, carrierShipmentID, labelURL *string,
	firstCarrierScanAt *time.Time,
	labelStatus LabelStatus,
	lengthMM, widthMM, heightMM *float64,
	quantity int,
	unitWeightGrams float64,
	shippingMethod string,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, lengthMM, widthMM, heightMM, quantity, unitWeightGrams, shippingMethod)
	if err != nil {
		return nil, err
	}

	if err := labelStatus.Validate(); err != nil {
		return nil, err
	}

	if firstCarrierScanAt != nil && trackingNumber == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("firstCarrierScanAt",
			errors.New("scan timestamp present without a tracking number"))
	}

	if labelStatus == Shipped && firstCarrierScanAt == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("labelStatus",
			errors.New("shipped status requires a scan timestamp"))
	}

	o.trackingNumber = trackingNumber
	o.carrierShipmentID = carrierShipmentID
	o.labelURL = labelURL
	o.firstCarrierScanAt = firstCarrierScanAt
	o.labelStatus = labelStatus
	return o, nil
}

// Validate ensures the Order was constructed via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's surrogate identifier.
func (o *Order) ID() int64 {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// TrackingNumber returns the current carrier tracking number, or nil when
// no label has been created.
func (o *Order) TrackingNumber() *string {
	return o.trackingNumber
}

// CarrierShipmentID returns the carrier's shipment identifier, or nil.
func (o *Order) CarrierShipmentID() *string {
	return o.carrierShipmentID
}

// LabelURL returns the location of the current label artifact, or nil.
func (o *Order) LabelURL() *string {
	return o.labelURL
}

// FirstCarrierScanAt returns the write-once lock timestamp, or nil while
// the carrier has not taken possession.
func (o *Order) FirstCarrierScanAt() *time.Time {
	return o.firstCarrierScanAt
}

// LabelStatus returns the label lifecycle status.
func (o *Order) LabelStatus() LabelStatus {
	return o.labelStatus
}

// ModelDimensionsMM returns the measured model dimensions in millimeters.
// Any of the three may be nil for unmeasured models.
func (o *Order) ModelDimensionsMM() (length, width, height *float64) {
	return o.modelLengthMM, o.modelWidthMM, o.modelHeightMM
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// UnitWeightGrams returns the weight of a single printed unit in grams.
func (o *Order) UnitWeightGrams() float64 {
	return o.unitWeightGrams
}

// ShippingMethod returns the carrier service tier chosen at checkout.
func (o *Order) ShippingMethod() string {
	return o.shippingMethod
}

// IsLocked reports whether the carrier has physically scanned the package.
func (o *Order) IsLocked() bool {
	return o.firstCarrierScanAt != nil
}

// ShipmentState derives the label-lock state from the shipping identifiers.
func (o *Order) ShipmentState() ShipmentState {
	switch {
	case o.firstCarrierScanAt != nil:
		return Locked
	case o.trackingNumber != nil:
		return Unlocked
	default:
		return NoLabel
	}
}

// AssignLabel records a newly purchased label on the order. Repeat calls
// before a carrier scan replace the previous tracking number; the old label
// is voided on the carrier side, not here.
//
// Returns a ShipmentLockedError once the carrier has scanned the package.
// The lock timestamp is never touched by this method.
func (o *Order) AssignLabel(trackingNumber, carrierShipmentID, labelURL string) error {
	if o.IsLocked() {
		locked := ""
		if o.trackingNumber != nil {
			locked = *o.trackingNumber
		}
		return errs.NewShipmentLockedError(o.id, locked)
	}

	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	newStatus, err := o.labelStatus.CreateLabel()
	if err != nil {
		return err
	}

	o.labelStatus = newStatus
	o.trackingNumber = &trackingNumber
	o.carrierShipmentID = &carrierShipmentID
	o.labelURL = &labelURL
	return nil
}

// MarkLabelPrinted records that staff printed the current label artifact.
// Requires an existing label; re-printing is allowed.
func (o *Order) MarkLabelPrinted() error {
	if o.trackingNumber == nil {
		return errs.NewValueIsInvalidErrorWithCause("labelStatus",
			errors.New("cannot print a label that has not been created"))
	}

	newStatus, err := o.labelStatus.Print()
	if err != nil {
		return err
	}

	o.labelStatus = newStatus
	return nil
}

// RecordCarrierScan sets the write-once lock timestamp and moves the label
// status to Shipped. This is the only code path that populates
// firstCarrierScanAt.
//
// Returns (true, nil) when the lock was set by this call, (false, nil) when
// the order was already locked (repeated detections are no-ops), and an
// error when the order has no tracking number.
func (o *Order) RecordCarrierScan(at time.Time) (bool, error) {
	if o.IsLocked() {
		return false, nil
	}

	if o.trackingNumber == nil {
		return false, ErrScanWithoutLabel
	}

	newStatus, err := o.labelStatus.Ship()
	if err != nil {
		return false, err
	}

	scannedAt := at.UTC()
	o.firstCarrierScanAt = &scannedAt
	o.labelStatus = newStatus
	return true, nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setUnitWeightGrams(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitWeightGrams",
			fmt.Errorf("%g is negative", weight))
	}
	o.unitWeightGrams = weight
	return nil
}

func (o *Order) setShippingMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("shippingMethod")
	}
	o.shippingMethod = method
	return nil
}
