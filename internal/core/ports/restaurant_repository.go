package ports

import (
	"context"

	"foodrush/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant entities.
type RestaurantRepository interface {
	// Add persists a new restaurant and assigns its identifier.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	// Returns errs.ErrObjectNotFound when the identifier does not resolve.
	Get(ctx context.Context, id int64) (*restaurant.Restaurant, error)
}
