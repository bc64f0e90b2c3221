// Package ports defines repository and transaction interfaces for the domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodrush/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when the identifier does not resolve.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetDriverIDsWithActiveOrders returns the distinct driver identifiers
	// referenced by orders in an active status (assigned, preparing,
	// in-transit). Used by the driver release job to decide which busy
	// drivers still hold work.
	GetDriverIDsWithActiveOrders(ctx context.Context) ([]int64, error)
}
