// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows. Line items
// and delivery coordinates are stored as JSON documents rather than joined
// tables; the domain treats them as value snapshots, so there is nothing to
// normalize.
package orderrepo

import (
	"encoding/json"
	"time"

	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and driver for the lifecycle queries, and by created_at
// for the analytics window scans.
//
// The prepared_at column is part of the historical schema: no lifecycle
// transition writes it, but it is carried so existing data and the wire
// contract stay intact.
type OrderDTO struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID          int64  `gorm:"not null;index"`
	RestaurantID        int64  `gorm:"not null;index"`
	DriverID            *int64 `gorm:"index"`
	CustomerName        string
	RestaurantName      string
	DriverName          string
	Items               string  `gorm:"type:jsonb;not null"`
	TotalAmount         float64 `gorm:"not null"`
	Status              string  `gorm:"not null;index"`
	DeliveryAddress     string
	DeliveryCoordinates *string   `gorm:"type:jsonb"`
	CreatedAt           time.Time `gorm:"not null;index"`
	ConfirmedAt         *time.Time
	PreparedAt          *time.Time
	InTransitAt         *time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

type lineItemDocument struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type coordinatesDocument struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := aggregate.Items()
	itemDocs := make([]lineItemDocument, 0, len(items))
	for _, item := range items {
		itemDocs = append(itemDocs, lineItemDocument{
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			Subtotal: item.Subtotal(),
		})
	}

	itemsJSON, err := json.Marshal(itemDocs)
	if err != nil {
		return OrderDTO{}, err
	}

	var coordinates *string
	if point := aggregate.DeliveryCoordinates(); point != nil {
		coordinatesJSON, marshalErr := json.Marshal(coordinatesDocument{
			Latitude:  point.Latitude(),
			Longitude: point.Longitude(),
		})
		if marshalErr != nil {
			return OrderDTO{}, marshalErr
		}
		doc := string(coordinatesJSON)
		coordinates = &doc
	}

	return OrderDTO{
		ID:                  aggregate.ID(),
		CustomerID:          aggregate.CustomerID(),
		RestaurantID:        aggregate.RestaurantID(),
		DriverID:            aggregate.DriverID(),
		CustomerName:        aggregate.CustomerName(),
		RestaurantName:      aggregate.RestaurantName(),
		DriverName:          aggregate.DriverName(),
		Items:               string(itemsJSON),
		TotalAmount:         aggregate.TotalAmount(),
		Status:              string(aggregate.Status()),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		DeliveryCoordinates: coordinates,
		CreatedAt:           aggregate.CreatedAt(),
		ConfirmedAt:         aggregate.ConfirmedAt(),
		PreparedAt:          aggregate.PreparedAt(),
		InTransitAt:         aggregate.InTransitAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		CancelledAt:         aggregate.CancelledAt(),
	}, nil
}

// toDomain reconstructs the complete aggregate from a database row using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var itemDocs []lineItemDocument
	if err := json.Unmarshal([]byte(dto.Items), &itemDocs); err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(itemDocs))
	for _, doc := range itemDocs {
		item, err := order.NewLineItem(doc.Name, doc.Price, doc.Quantity, doc.Subtotal)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var coordinates *kernel.GeoPoint
	if dto.DeliveryCoordinates != nil {
		var doc coordinatesDocument
		if err := json.Unmarshal([]byte(*dto.DeliveryCoordinates), &doc); err != nil {
			return nil, err
		}
		point, err := kernel.NewGeoPoint(doc.Latitude, doc.Longitude)
		if err != nil {
			return nil, err
		}
		coordinates = &point
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.RestaurantID,
		dto.DriverID,
		items,
		dto.TotalAmount,
		order.Status(dto.Status),
		dto.CustomerName,
		dto.RestaurantName,
		dto.DriverName,
		dto.DeliveryAddress,
		coordinates,
		dto.CreatedAt,
		dto.ConfirmedAt,
		dto.PreparedAt,
		dto.InTransitAt,
		dto.DeliveredAt,
		dto.CancelledAt,
	)
}
