package queries

import (
	"context"
	"database/sql"
	"errors"

	"printship/internal/core/domain/model/order"
	"printship/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentStatusQueryHandler reads one order's shipping state from the
// database. Reads go straight to SQL rather than through the aggregate; the
// response is a projection, not a mutation target.
type GetShipmentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentStatusQueryHandler creates a handler for shipment status queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentStatusQueryHandler(db *gorm.DB) GetShipmentStatusQueryHandler {
	return GetShipmentStatusQueryHandler{db: db}
}

// Handle executes the query for a single order. Returns an object-not-found
// error when the order does not exist.
func (h GetShipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatusQuery,
) (GetShipmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			label_status,
			tracking_number,
			label_url,
			first_carrier_scan_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	var resp GetShipmentStatusQueryResponse
	var labelStatus int
	var trackingNumber, labelURL sql.NullString
	var firstCarrierScanAt sql.NullTime

	err := row.Scan(
		&resp.OrderID,
		&resp.OrderNumber,
		&labelStatus,
		&trackingNumber,
		&labelURL,
		&firstCarrierScanAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentStatusQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetShipmentStatusQueryResponse{}, err
	}

	resp.LabelStatus = order.LabelStatus(labelStatus).String()
	if trackingNumber.Valid {
		resp.TrackingNumber = &trackingNumber.String
	}
	if labelURL.Valid {
		resp.LabelURL = &labelURL.String
	}
	if firstCarrierScanAt.Valid {
		scannedAt := firstCarrierScanAt.Time.UTC()
		resp.FirstCarrierScanAt = &scannedAt
	}

	switch {
	case resp.FirstCarrierScanAt != nil:
		resp.ShipmentState = order.Locked.String()
	case resp.TrackingNumber != nil:
		resp.ShipmentState = order.Unlocked.String()
	default:
		resp.ShipmentState = order.NoLabel.String()
	}
	resp.CanRegenerateLabel = resp.FirstCarrierScanAt == nil

	return resp, nil
}
