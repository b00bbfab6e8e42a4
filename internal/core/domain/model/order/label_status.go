package order

import (
	"fmt"

	"printship/internal/pkg/errs"
)

// LabelStatus represents the lifecycle state of an order's shipping label.
// It implements a state machine with defined transitions:
//
//	NotCreated ──> Created ──> Printed ──> Shipped
//	                  │  ^        │
//	                  │  └────────┘
//	                  └──────────────────> Shipped
//
// Created and Printed both transition back to Created on label regeneration
// (a regenerated label has not been printed yet). Shipped is set only when a
// carrier possession scan is detected and is final.
type LabelStatus int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized LabelStatus values.
	Unknown LabelStatus = iota

	// NotCreated is the initial status before any label exists.
	NotCreated

	// Created indicates a label has been purchased from the carrier
	// but not yet printed by staff.
	Created

	// Printed indicates staff printed the label artifact.
	Printed

	// Shipped indicates the carrier has physically scanned the package.
	// This is a final state.
	Shipped
)

func getStatusStrings() map[LabelStatus]string {
	return map[LabelStatus]string{
		Unknown:    "unknown",
		NotCreated: "not_created",
		Created:    "created",
		Printed:    "printed",
		Shipped:    "shipped",
	}
}

func getValidStatusStrings() map[LabelStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[LabelStatus]string{
		NotCreated: "not_created",
		Created:    "created",
		Printed:    "printed",
		Shipped:    "shipped",
	}
}

// Validate checks if the LabelStatus value is valid.
// Valid statuses are NotCreated, Created, Printed and Shipped;
// Unknown (0) and any other values are invalid.
func (s LabelStatus) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("labelStatus",
			fmt.Errorf("%d is not a valid label status", s))
	}
	return nil
}

// String returns the wire name of the status ("created", "shipped", ...).
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s LabelStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// LabelStatusFromString parses a persisted status name back into a LabelStatus.
// Returns an error for names that do not map to a valid status.
func LabelStatusFromString(name string) (LabelStatus, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("labelStatus",
		fmt.Errorf("%q is not a valid label status", name))
}

// CreateLabel transitions the status to Created.
//
// Valid transitions:
//   - NotCreated -> Created (first label)
//   - Created -> Created (regeneration before printing)
//   - Printed -> Created (regeneration after printing; new artifact is unprinted)
//
// Shipped orders cannot receive a new label; the aggregate refuses that case
// earlier via the lock, and this transition enforces it independently.
func (s LabelStatus) CreateLabel() (LabelStatus, error) {
	if s != NotCreated && s != Created && s != Printed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"labelStatus",
			fmt.Errorf("%s is not a valid status to create a label from", s.String()),
		)
	}

	return Created, nil
}

// Print transitions the status to Printed.
//
// Valid transitions:
//   - Created -> Printed
//   - Printed -> Printed (re-printing an existing label)
func (s LabelStatus) Print() (LabelStatus, error) {
	if s != Created && s != Printed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"labelStatus",
			fmt.Errorf("%s is not a valid status to print from", s.String()),
		)
	}

	return Printed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Created -> Shipped (the carrier can take possession before staff
//     mark the label printed)
//   - Printed -> Shipped
//   - Shipped -> Shipped (repeated scan detections are idempotent)
func (s LabelStatus) Ship() (LabelStatus, error) {
	if s != Created && s != Printed && s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"labelStatus",
			fmt.Errorf("%s is not a valid status to ship from", s.String()),
		)
	}

	return Shipped, nil
}
