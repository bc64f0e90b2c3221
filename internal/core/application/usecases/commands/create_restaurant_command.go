package commands

import (
	"errors"

	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a request to register a new restaurant.
type CreateRestaurantCommand struct {
	name        string
	address     string
	cuisineType string
	coordinates *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a validated restaurant registration command.
// Coordinates are optional; when present they must be a valid geographic point.
func NewCreateRestaurantCommand(
	name string,
	address string,
	cuisineType string,
	coordinates *kernel.GeoPoint,
) (CreateRestaurantCommand, error) {
	if name == "" {
		return CreateRestaurantCommand{}, errs.NewValueIsRequiredError("name")
	}
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return CreateRestaurantCommand{}, err
		}
	}

	return CreateRestaurantCommand{
		name:        name,
		address:     address,
		cuisineType: cuisineType,
		coordinates: coordinates,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Address returns the restaurant's street address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// CuisineType returns the restaurant's cuisine classification.
func (c CreateRestaurantCommand) CuisineType() string {
	return c.cuisineType
}

// Coordinates returns the restaurant's geographic location, or nil.
func (c CreateRestaurantCommand) Coordinates() *kernel.GeoPoint {
	return c.coordinates
}
