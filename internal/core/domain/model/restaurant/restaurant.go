// Package restaurant provides the Restaurant entity referenced by orders.
package restaurant

import (
	"errors"
	"time"

	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
var ErrRestaurantIsNotConstructed = errors.New(
	"Restaurant must be created via NewRestaurant or RestoreRestaurant constructor")

// ErrRestaurantIDAlreadyAssigned is returned when attempting to overwrite a restaurant's identity.
var ErrRestaurantIDAlreadyAssigned = errors.New("restaurant ID is immutable once assigned")

// Restaurant represents a partner restaurant. Orders reference restaurants by
// identifier and copy the name at creation time.
type Restaurant struct {
	id          int64
	name        string
	address     string
	cuisineType string
	coordinates *kernel.GeoPoint
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant. Cuisine type and coordinates are optional.
func NewRestaurant(
	name string,
	address string,
	cuisineType string,
	coordinates *kernel.GeoPoint,
	createdAt time.Time,
) (*Restaurant, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return nil, err
		}
	}

	return &Restaurant{
		name:        name,
		address:     address,
		cuisineType: cuisineType,
		coordinates: coordinates,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(
	id int64,
	name string,
	address string,
	cuisineType string,
	coordinates *kernel.GeoPoint,
	createdAt time.Time,
) (*Restaurant, error) {
	r, err := NewRestaurant(name, address, cuisineType, coordinates, createdAt)
	if err != nil {
		return nil, err
	}

	r.id = id
	return r, nil
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// AssignID sets the persistence-assigned identifier exactly once.
func (r *Restaurant) AssignID(id int64) error {
	if r.id != 0 {
		return ErrRestaurantIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("restaurant id")
	}

	r.id = id
	return nil
}

// ID returns the restaurant's unique identifier, or 0 when not yet persisted.
func (r *Restaurant) ID() int64 {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the street address.
func (r *Restaurant) Address() string {
	return r.address
}

// CuisineType returns the optional cuisine type.
func (r *Restaurant) CuisineType() string {
	return r.cuisineType
}

// Coordinates returns the optional map coordinates.
func (r *Restaurant) Coordinates() *kernel.GeoPoint {
	return r.coordinates
}

// CreatedAt returns the creation timestamp.
func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}
