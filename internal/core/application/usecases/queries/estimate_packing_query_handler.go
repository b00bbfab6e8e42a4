package queries

import (
	"context"
	"database/sql"
	"errors"

	"printship/internal/core/domain/model/packing"
	"printship/internal/pkg/errs"

	"gorm.io/gorm"
)

// EstimatePackingQueryHandler loads an order's stored model dimensions and
// runs the packing optimizer over them.
type EstimatePackingQueryHandler struct {
	db      *gorm.DB
	catalog packing.Catalog
}

// NewEstimatePackingQueryHandler creates a handler for packing estimate queries.
func NewEstimatePackingQueryHandler(db *gorm.DB, catalog packing.Catalog) EstimatePackingQueryHandler {
	return EstimatePackingQueryHandler{db: db, catalog: catalog}
}

// Handle executes the query for a single order. Missing or zero stored
// dimensions are not an error; the optimizer falls back to a generic
// recommendation.
func (h EstimatePackingQueryHandler) Handle(
	ctx context.Context,
	query EstimatePackingQuery,
) (packing.Result, error) {
	if err := query.Validate(); err != nil {
		return packing.Result{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			model_length_mm,
			model_width_mm,
			model_height_mm,
			quantity,
			unit_weight_grams,
			shipping_method
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	var lengthMM, widthMM, heightMM sql.NullFloat64
	var quantity int
	var unitWeightGrams float64
	var shippingMethod string

	err := row.Scan(
		&lengthMM,
		&widthMM,
		&heightMM,
		&quantity,
		&unitWeightGrams,
		&shippingMethod,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return packing.Result{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return packing.Result{}, err
	}

	input := packing.Input{
		Quantity:        quantity,
		UnitWeightGrams: unitWeightGrams,
		ShippingMethod:  shippingMethod,
	}
	if lengthMM.Valid {
		input.LengthMM = &lengthMM.Float64
	}
	if widthMM.Valid {
		input.WidthMM = &widthMM.Float64
	}
	if heightMM.Valid {
		input.HeightMM = &heightMM.Float64
	}

	return h.catalog.Calculate(input), nil
}
