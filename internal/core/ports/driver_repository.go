package ports

import (
	"context"

	"foodrush/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for driver entities.
type DriverRepository interface {
	// Add persists a new driver and assigns its identifier.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	// Returns errs.ErrObjectNotFound when the identifier does not resolve.
	Get(ctx context.Context, id int64) (*driver.Driver, error)

	// GetAllBusy retrieves all drivers currently in the busy status.
	GetAllBusy(ctx context.Context) ([]*driver.Driver, error)
}
