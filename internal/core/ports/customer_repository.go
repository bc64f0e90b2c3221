package ports

import (
	"context"

	"foodrush/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer entities.
type CustomerRepository interface {
	// Add persists a new customer and assigns its identifier.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	// Returns errs.ErrObjectNotFound when the identifier does not resolve.
	Get(ctx context.Context, id int64) (*customer.Customer, error)
}
