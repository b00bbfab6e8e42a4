package ports

import (
	"context"

	"printship/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier. Inside a transaction the row
	// is locked for update, serializing concurrent label operations on the
	// same order.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByTrackingNumber retrieves the order currently holding the given
	// tracking number. Returns an ObjectNotFoundError when no order matches;
	// tracking polls may reference shipments this system never issued.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error)

	// GetAllAwaitingScan retrieves orders with a label but no carrier scan,
	// i.e. the set the tracking poll has to watch.
	GetAllAwaitingScan(ctx context.Context) ([]*order.Order, error)
}
