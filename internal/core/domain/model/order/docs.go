// Package order provides the Order aggregate for the print-shop shipping core.
//
// The package includes:
//   - Order: the aggregate root carrying shipping identifiers, the printed
//     model's physical attributes, and the label lifecycle
//   - LabelStatus: a state machine over the label lifecycle
//     (NotCreated -> Created -> Printed -> Shipped)
//   - PossessionMatcher: substring matching of carrier activity text against
//     a configurable list of possession indicators
//
// Key business rules:
//   - FirstCarrierScanAt is write-once: it is set exactly once, by
//     RecordCarrierScan, and no method ever clears or overwrites it
//   - A scan cannot precede label creation: the lock timestamp may only be
//     set while a tracking number is present
//   - While unlocked, AssignLabel may be called repeatedly; each call replaces
//     the tracking number (voiding the old label is the carrier's concern)
//   - Once locked, AssignLabel is permanently refused; there is no override
//
// The shipment state is derived, never stored: no tracking number means
// NoLabel, a tracking number without a scan timestamp means Unlocked, and a
// scan timestamp means Locked.
package order
