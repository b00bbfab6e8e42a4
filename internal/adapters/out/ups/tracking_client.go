package ups

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"printship/internal/core/ports"
	"printship/internal/pkg/errs"
)

const trackingOperation = "ups fetch tracking"

// TrackingClient reads tracking activity through the UPS track endpoint.
type TrackingClient struct {
	cfg config
}

// NewTrackingClient creates a tracking client. Pass nil for httpClient to use
// the default 5 second timeout.
func NewTrackingClient(baseURL, apiKey string, httpClient *http.Client) (*TrackingClient, error) {
	cfg, err := newConfig(baseURL, apiKey, httpClient)
	if err != nil {
		return nil, err
	}
	return &TrackingClient{cfg: cfg}, nil
}

// trackingResponseDTO is the wire form of a tracking feed.
type trackingResponseDTO struct {
	Activities []trackingActivityDTO `json:"activities"`
}

type trackingActivityDTO struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Occurred string `json:"occurred_at"`
}

// FetchActivities returns the carrier's activity records for a tracking
// number, newest first as the carrier sends them. A tracking number the
// carrier does not know yet yields an empty slice, not an error: freshly
// created labels routinely have no history.
func (c *TrackingClient) FetchActivities(ctx context.Context, trackingNumber string) ([]ports.TrackingActivity, error) {
	endpoint := c.cfg.baseURL + "/api/track/" + url.PathEscape(trackingNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.NewUpstreamFailureError(trackingOperation, err)
	}
	c.cfg.setHeaders(req)

	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewUpstreamFailureError(trackingOperation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []ports.TrackingActivity{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewUpstreamFailureError(
			trackingOperation, fmt.Errorf("unexpected status: %s", resp.Status),
		)
	}

	var dto trackingResponseDTO
	if err = json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, errs.NewUpstreamFailureError(trackingOperation, err)
	}

	activities := make([]ports.TrackingActivity, 0, len(dto.Activities))
	for _, record := range dto.Activities {
		occurredAt, parseErr := time.Parse(time.RFC3339, record.Occurred)
		if parseErr != nil {
			// Detection only needs the status text; a malformed timestamp
			// must not hide a possession scan.
			occurredAt = time.Time{}
		}
		activities = append(activities, ports.TrackingActivity{
			StatusDescription: record.Status,
			Location:          record.Location,
			OccurredAt:        occurredAt,
		})
	}

	return activities, nil
}
