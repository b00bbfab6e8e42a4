// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"printship/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Tracking columns are nullable: they stay NULL until a label is created, and
// first_carrier_scan_at stays NULL until the carrier's first possession scan.
// The scan column is indexed because the tracking poll lists unlocked orders.
type OrderDTO struct {
	ID                 int64   `gorm:"primaryKey"`
	OrderNumber        string  `gorm:"uniqueIndex;not null"`
	TrackingNumber     *string `gorm:"index"`
	CarrierShipmentID  *string
	LabelURL           *string
	FirstCarrierScanAt *time.Time `gorm:"index"`
	LabelStatus        int        `gorm:"index"`
	ModelLengthMM      *float64
	ModelWidthMM       *float64
	ModelHeightMM      *float64
	Quantity           int
	UnitWeightGrams    float64
	ShippingMethod     string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lengthMM, widthMM, heightMM := aggregate.ModelDimensionsMM()

	return OrderDTO{
		ID:                 aggregate.ID(),
		OrderNumber:        aggregate.OrderNumber(),
		TrackingNumber:     aggregate.TrackingNumber(),
		CarrierShipmentID:  aggregate.CarrierShipmentID(),
		LabelURL:           aggregate.LabelURL(),
		FirstCarrierScanAt: aggregate.FirstCarrierScanAt(),
		LabelStatus:        int(aggregate.LabelStatus()),
		ModelLengthMM:      lengthMM,
		ModelWidthMM:       widthMM,
		ModelHeightMM:      heightMM,
		Quantity:           aggregate.Quantity(),
		UnitWeightGrams:    aggregate.UnitWeightGrams(),
		ShippingMethod:     aggregate.ShippingMethod(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lock state using RestoreOrder,
// so stored rows that violate cross-field invariants are rejected on read.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var firstCarrierScanAt *time.Time
	if dto.FirstCarrierScanAt != nil {
		scannedAt := dto.FirstCarrierScanAt.UTC()
		firstCarrierScanAt = &scannedAt
	}

	return order.RestoreOrder(
		dto.ID,
		dto.OrderNumber,
		dto.TrackingNumber,
		dto.CarrierShipmentID,
		dto.LabelURL,
		firstCarrierScanAt,
		order.LabelStatus(dto.LabelStatus),
		dto.ModelLengthMM,
		dto.ModelWidthMM,
		dto.ModelHeightMM,
		dto.Quantity,
		dto.UnitWeightGrams,
		dto.ShippingMethod,
	)
}
