package ups

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"printship/internal/core/domain/model/packing"
	"printship/internal/core/ports"
	"printship/internal/pkg/errs"
)

const labelOperation = "ups create label"

// LabelClient purchases shipping labels through the UPS shipments endpoint.
type LabelClient struct {
	cfg config
}

// NewLabelClient creates a label client. Pass nil for httpClient to use the
// default 5 second timeout.
func NewLabelClient(baseURL, apiKey string, httpClient *http.Client) (*LabelClient, error) {
	cfg, err := newConfig(baseURL, apiKey, httpClient)
	if err != nil {
		return nil, err
	}
	return &LabelClient{cfg: cfg}, nil
}

// labelRequestDTO is the wire form of a label purchase.
type labelRequestDTO struct {
	OrderNumber    string  `json:"order_number"`
	ServiceCode    string  `json:"service_code"`
	Quantity       int     `json:"quantity"`
	TotalWeightLbs float64 `json:"total_weight_lbs"`
}

// labelResponseDTO is the wire form of a purchased label.
type labelResponseDTO struct {
	TrackingNumber string `json:"tracking_number"`
	ShipmentID     string `json:"shipment_id"`
	LabelURL       string `json:"label_url"`
}

// CreateLabel purchases a label for the shipment. Carrier-side failures and
// malformed responses surface as UpstreamFailureError so callers can map
// them to a gateway failure instead of a client mistake.
func (c *LabelClient) CreateLabel(ctx context.Context, shipment ports.LabelRequest) (ports.CreatedLabel, error) {
	payload := labelRequestDTO{
		OrderNumber:    shipment.OrderNumber,
		ServiceCode:    shipment.ShippingMethod,
		Quantity:       shipment.Quantity,
		TotalWeightLbs: packing.EstimateTotalWeightLbs(shipment.Quantity, shipment.UnitWeightGrams),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ports.CreatedLabel{}, errs.NewUpstreamFailureError(labelOperation, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.cfg.baseURL+"/api/shipments", bytes.NewReader(body),
	)
	if err != nil {
		return ports.CreatedLabel{}, errs.NewUpstreamFailureError(labelOperation, err)
	}
	c.cfg.setHeaders(req)

	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return ports.CreatedLabel{}, errs.NewUpstreamFailureError(labelOperation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return ports.CreatedLabel{}, errs.NewUpstreamFailureError(
			labelOperation, fmt.Errorf("unexpected status: %s", resp.Status),
		)
	}

	var dto labelResponseDTO
	if err = json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return ports.CreatedLabel{}, errs.NewUpstreamFailureError(labelOperation, err)
	}

	if dto.TrackingNumber == "" {
		return ports.CreatedLabel{}, errs.NewUpstreamFailureError(
			labelOperation, errors.New("response is missing a tracking number"),
		)
	}

	return ports.CreatedLabel{
		TrackingNumber:    dto.TrackingNumber,
		CarrierShipmentID: dto.ShipmentID,
		LabelURL:          dto.LabelURL,
	}, nil
}
