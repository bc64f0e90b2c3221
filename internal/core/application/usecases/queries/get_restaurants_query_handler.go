package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"gorm.io/gorm"
)

// GetRestaurantsQueryHandler retrieves restaurants from the database.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant listing queries.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle executes the query and returns all restaurants sorted by ID.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, address, cuisine_type, coordinates, created_at
		FROM restaurants
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantResponse, 0)
	for rows.Next() {
		var (
			resp        RestaurantResponse
			address     sql.NullString
			cuisineType sql.NullString
			coordinates []byte
		)
		if err = rows.Scan(&resp.ID, &resp.Name, &address, &cuisineType, &coordinates, &resp.CreatedAt); err != nil {
			return nil, err
		}
		resp.Address = address.String
		resp.CuisineType = cuisineType.String
		if len(coordinates) > 0 {
			resp.Coordinates = json.RawMessage(coordinates)
		}
		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
