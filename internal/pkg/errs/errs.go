package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrValueIsRequired = errors.New("value is required")
	ErrShipmentLocked  = errors.New("shipment is locked")
	ErrUpstreamFailure = errors.New("upstream failure")
)

// sanitize flattens newlines in interpolated values so error messages
// stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing object.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing object
// that wraps an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// that wraps an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required
// value that wraps an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ShipmentLockedError indicates a label create/regenerate attempt was refused
// because the carrier has already scanned the package. The message is meant
// to be shown to dashboard users as-is.
type ShipmentLockedError struct {
	OrderID        int64
	TrackingNumber string
}

// NewShipmentLockedError creates a conflict error for a locked shipment.
func NewShipmentLockedError(orderID int64, trackingNumber string) *ShipmentLockedError {
	return &ShipmentLockedError{OrderID: orderID, TrackingNumber: trackingNumber}
}

func (e *ShipmentLockedError) Error() string {
	return fmt.Sprintf(
		"%s: order %d has already been scanned by the carrier (tracking %s); "+
			"a new label cannot be created, contact the carrier directly to void the shipment",
		ErrShipmentLocked, e.OrderID, sanitize(e.TrackingNumber))
}

func (e *ShipmentLockedError) Unwrap() error {
	return ErrShipmentLocked
}

// UpstreamFailureError indicates a carrier API call failed or timed out.
// No state is mutated when this error is returned.
type UpstreamFailureError struct {
	Operation string
	Cause     error
}

// NewUpstreamFailureError creates an error for a failed carrier API call.
func NewUpstreamFailureError(operation string, cause error) *UpstreamFailureError {
	return &UpstreamFailureError{Operation: operation, Cause: cause}
}

func (e *UpstreamFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUpstreamFailure, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUpstreamFailure, e.Operation)
}

func (e *UpstreamFailureError) Unwrap() error {
	return ErrUpstreamFailure
}
