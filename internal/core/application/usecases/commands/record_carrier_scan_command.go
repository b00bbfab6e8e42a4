package commands

import (
	"errors"

	"printship/internal/core/ports"
	"printship/internal/pkg/guard"
)

var (
	ErrRecordCarrierScanCommandIsNotConstructed = errors.New(
		"RecordCarrierScanCommand must be created via NewRecordCarrierScanCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// RecordCarrierScanCommand carries one tracking number's activity feed into
// the scan-detection operation. An empty activity list is valid: carriers
// return nothing for freshly created labels.
type RecordCarrierScanCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	activities     []ports.TrackingActivity

	guard guard.ConstructorGuard
}

// NewRecordCarrierScanCommand creates a scan-detection command.
// Validates that the tracking number is not empty.
func NewRecordCarrierScanCommand(
	trackingNumber string,
	activities []ports.TrackingActivity,
) (RecordCarrierScanCommand, error) {
	cmd := RecordCarrierScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackingNumber(trackingNumber); err != nil {
		return RecordCarrierScanCommand{}, err
	}

	cmd.activities = activities
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCarrierScanCommand) Validate() error {
	return c.guard.Validate(ErrRecordCarrierScanCommandIsNotConstructed)
}

// TrackingNumber returns the tracking number that was polled.
func (c RecordCarrierScanCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Activities returns the carrier's tracking activity records.
func (c RecordCarrierScanCommand) Activities() []ports.TrackingActivity {
	return c.activities
}

func (c *RecordCarrierScanCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
