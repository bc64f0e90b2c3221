package queries

import (
	"encoding/json"
	"errors"
	"time"

	"foodrush/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves all registered restaurants.
type GetRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a restaurant listing query.
func NewGetRestaurantsQuery() GetRestaurantsQuery {
	return GetRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// RestaurantResponse is the read model for a restaurant row. Coordinates are
// passed through as the stored JSON document.
type RestaurantResponse struct {
	ID          int64
	Name        string
	Address     string
	CuisineType string
	Coordinates json.RawMessage
	CreatedAt   time.Time
}
