// Package restaurantrepo implements restaurant persistence on top of GORM.
// The optional location is stored as a JSON coordinate pair.
package restaurantrepo

import (
	"encoding/json"
	"time"

	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/core/domain/model/restaurant"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Address     string
	CuisineType string
	Coordinates *string   `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type coordinatesDocument struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func fromDomain(aggregate *restaurant.Restaurant) (RestaurantDTO, error) {
	var coordinates *string
	if point := aggregate.Coordinates(); point != nil {
		coordinatesJSON, err := json.Marshal(coordinatesDocument{
			Latitude:  point.Latitude(),
			Longitude: point.Longitude(),
		})
		if err != nil {
			return RestaurantDTO{}, err
		}
		doc := string(coordinatesJSON)
		coordinates = &doc
	}

	return RestaurantDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Address:     aggregate.Address(),
		CuisineType: aggregate.CuisineType(),
		Coordinates: coordinates,
		CreatedAt:   aggregate.CreatedAt(),
	}, nil
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	var coordinates *kernel.GeoPoint
	if dto.Coordinates != nil {
		var doc coordinatesDocument
		if err := json.Unmarshal([]byte(*dto.Coordinates), &doc); err != nil {
			return nil, err
		}
		point, err := kernel.NewGeoPoint(doc.Latitude, doc.Longitude)
		if err != nil {
			return nil, err
		}
		coordinates = &point
	}

	return restaurant.RestoreRestaurant(
		dto.ID,
		dto.Name,
		dto.Address,
		dto.CuisineType,
		coordinates,
		dto.CreatedAt,
	)
}
