package ports

import (
	"context"
	"time"
)

// CreatedLabel is the carrier's response to a label purchase.
type CreatedLabel struct {
	TrackingNumber    string
	CarrierShipmentID string
	LabelURL          string
}

// TrackingActivity is one record from a carrier's tracking feed.
// StatusDescription is free text chosen by the carrier.
type TrackingActivity struct {
	StatusDescription string
	Location          string
	OccurredAt        time.Time
}

// CarrierLabelClient purchases shipping labels from a carrier API.
// Implementations must bound the call with a timeout and return an
// UpstreamFailureError on carrier errors or timeouts.
type CarrierLabelClient interface {
	CreateLabel(ctx context.Context, shipment LabelRequest) (CreatedLabel, error)
}

// LabelRequest carries the order attributes a carrier needs to rate and
// produce a label.
type LabelRequest struct {
	OrderNumber     string
	ShippingMethod  string
	Quantity        int
	UnitWeightGrams float64
}

// CarrierTrackingClient fetches tracking activity for a tracking number.
// Implementations must bound the call with a timeout and return an
// UpstreamFailureError on carrier errors or timeouts.
type CarrierTrackingClient interface {
	FetchActivities(ctx context.Context, trackingNumber string) ([]TrackingActivity, error)
}
