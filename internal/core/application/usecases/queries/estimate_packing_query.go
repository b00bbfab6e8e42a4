package queries

import (
	"errors"
	"fmt"

	"printship/internal/pkg/guard"
)

var (
	ErrEstimatePackingQueryIsNotConstructed = errors.New(
		"EstimatePackingQuery must be created via NewEstimatePackingQuery constructor",
	)
	ErrEstimatePackingOrderIDIsInvalid = errors.New("order id must be positive")
)

// EstimatePackingQuery recomputes the packing recommendation for an order
// from its stored model dimensions. Backs the dashboard's "Recalculate"
// action; the optimizer itself is pure, so the query only has to load the
// order row.
type EstimatePackingQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewEstimatePackingQuery creates a packing estimate query for an order.
func NewEstimatePackingQuery(orderID int64) (EstimatePackingQuery, error) {
	if orderID <= 0 {
		return EstimatePackingQuery{}, fmt.Errorf("%w: %d", ErrEstimatePackingOrderIDIsInvalid, orderID)
	}

	return EstimatePackingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q EstimatePackingQuery) Validate() error {
	return q.guard.Validate(ErrEstimatePackingQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to estimate packing for.
func (q EstimatePackingQuery) OrderID() int64 {
	return q.orderID
}
