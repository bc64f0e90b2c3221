package http

import (
	"encoding/json"
	"time"

	"foodrush/internal/core/application/usecases/queries"
	"foodrush/internal/core/domain/model/customer"
	"foodrush/internal/core/domain/model/driver"
	"foodrush/internal/core/domain/model/order"
	"foodrush/internal/core/domain/model/restaurant"
	"foodrush/internal/core/domain/services"
)

// Wire types. Field names are part of the public API contract; in particular
// note that the order status literal is "in-transit" while the status-count
// key is "in_transit".

// ErrorResponse is the error body for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// LineItemJSON is one order line on the wire.
type LineItemJSON struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// CoordinatesJSON is a geographic point on the wire.
type CoordinatesJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderJSON is a full order on the wire.
type OrderJSON struct {
	ID                  int64           `json:"id"`
	CustomerID          int64           `json:"customer_id"`
	RestaurantID        int64           `json:"restaurant_id"`
	DriverID            *int64          `json:"driver_id"`
	CustomerName        string          `json:"customer_name"`
	RestaurantName      string          `json:"restaurant_name"`
	DriverName          string          `json:"driver_name"`
	Items               json.RawMessage `json:"items"`
	TotalAmount         float64         `json:"total_amount"`
	Status              string          `json:"status"`
	DeliveryAddress     string          `json:"delivery_address"`
	DeliveryCoordinates json.RawMessage `json:"delivery_coordinates"`
	CreatedAt           time.Time       `json:"created_at"`
	ConfirmedAt         *time.Time      `json:"confirmed_at"`
	PreparedAt          *time.Time      `json:"prepared_at"`
	InTransitAt         *time.Time      `json:"in_transit_at"`
	DeliveredAt         *time.Time      `json:"delivered_at"`
	CancelledAt         *time.Time      `json:"cancelled_at"`
}

// CreateOrderRequest is the POST /api/orders body. Name fields override the
// denormalized snapshots; when omitted the referenced entities' current names
// are copied instead.
type CreateOrderRequest struct {
	CustomerID          int64            `json:"customer_id"`
	RestaurantID        int64            `json:"restaurant_id"`
	DriverID            *int64           `json:"driver_id"`
	Items               []LineItemJSON   `json:"items"`
	TotalAmount         float64          `json:"total_amount"`
	Status              string           `json:"status"`
	CustomerName        string           `json:"customer_name"`
	RestaurantName      string           `json:"restaurant_name"`
	DriverName          string           `json:"driver_name"`
	DeliveryAddress     string           `json:"delivery_address"`
	DeliveryCoordinates *CoordinatesJSON `json:"delivery_coordinates"`
}

// ChangeStatusRequest is the PUT /api/orders/:id/status body.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// AssignDriverRequest is the PUT /api/orders/:id/assign-driver body.
type AssignDriverRequest struct {
	DriverID   int64  `json:"driver_id"`
	DriverName string `json:"driver_name"`
}

// DriverJSON is a driver on the wire.
type DriverJSON struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateDriverRequest is the POST /api/drivers body.
type CreateDriverRequest struct {
	Name string `json:"name"`
}

// CustomerJSON is a customer on the wire.
type CustomerJSON struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Addresses json.RawMessage `json:"addresses"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateCustomerRequest is the POST /api/customers body.
type CreateCustomerRequest struct {
	Name      string   `json:"name"`
	Addresses []string `json:"addresses"`
}

// RestaurantJSON is a restaurant on the wire.
type RestaurantJSON struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	CuisineType string          `json:"cuisine_type"`
	Coordinates json.RawMessage `json:"coordinates"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateRestaurantRequest is the POST /api/restaurants body.
type CreateRestaurantRequest struct {
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	CuisineType string           `json:"cuisine_type"`
	Coordinates *CoordinatesJSON `json:"coordinates"`
}

// SalesAnalyticsRequest is the POST /api/analytics/sales body. Dates only
// matter when period is "custom".
type SalesAnalyticsRequest struct {
	Period    string     `json:"period"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// StatusCountsJSON carries the per-status order counts. The in_transit key
// deliberately differs from the "in-transit" status literal.
type StatusCountsJSON struct {
	New       int `json:"new"`
	Assigned  int `json:"assigned"`
	Preparing int `json:"preparing"`
	InTransit int `json:"in_transit"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}

// DriverPerformanceJSON is one top-drivers entry.
type DriverPerformanceJSON struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Deliveries      int    `json:"deliveries"`
	AvgDeliveryTime int    `json:"avg_delivery_time"`
}

// RestaurantPerformanceJSON is one top-restaurants entry.
type RestaurantPerformanceJSON struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

// AnalyticsSummaryJSON is the aggregate summary on the wire.
type AnalyticsSummaryJSON struct {
	TotalOrders     int                         `json:"total_orders"`
	TotalSales      float64                     `json:"total_sales"`
	AvgOrderValue   float64                     `json:"avg_order_value"`
	AvgDeliveryTime int                         `json:"avg_delivery_time"`
	CompletionRate  float64                     `json:"completion_rate"`
	OrderStatuses   StatusCountsJSON            `json:"order_statuses"`
	TopDrivers      []DriverPerformanceJSON     `json:"top_drivers"`
	TopRestaurants  []RestaurantPerformanceJSON `json:"top_restaurants"`
}

// TimeSeriesPointJSON is one calendar day of activity on the wire.
type TimeSeriesPointJSON struct {
	Date   string  `json:"date"`
	Orders int     `json:"orders"`
	Sales  float64 `json:"sales"`
}

// SalesAnalyticsJSON is the full analytics report on the wire: the summary
// nested under its own key plus the per-day series.
type SalesAnalyticsJSON struct {
	Summary    AnalyticsSummaryJSON  `json:"summary"`
	TimeSeries []TimeSeriesPointJSON `json:"time_series"`
}

func orderFromReadModel(resp queries.OrderResponse) OrderJSON {
	return OrderJSON{
		ID:                  resp.ID,
		CustomerID:          resp.CustomerID,
		RestaurantID:        resp.RestaurantID,
		DriverID:            resp.DriverID,
		CustomerName:        resp.CustomerName,
		RestaurantName:      resp.RestaurantName,
		DriverName:          resp.DriverName,
		Items:               resp.Items,
		TotalAmount:         resp.TotalAmount,
		Status:              resp.Status,
		DeliveryAddress:     resp.DeliveryAddress,
		DeliveryCoordinates: resp.DeliveryCoordinates,
		CreatedAt:           resp.CreatedAt,
		ConfirmedAt:         resp.ConfirmedAt,
		PreparedAt:          resp.PreparedAt,
		InTransitAt:         resp.InTransitAt,
		DeliveredAt:         resp.DeliveredAt,
		CancelledAt:         resp.CancelledAt,
	}
}

func orderFromDomain(aggregate *order.Order) (OrderJSON, error) {
	items := aggregate.Items()
	itemDocs := make([]LineItemJSON, 0, len(items))
	for _, item := range items {
		itemDocs = append(itemDocs, LineItemJSON{
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			Subtotal: item.Subtotal(),
		})
	}

	itemsJSON, err := json.Marshal(itemDocs)
	if err != nil {
		return OrderJSON{}, err
	}

	var coordinatesJSON json.RawMessage
	if point := aggregate.DeliveryCoordinates(); point != nil {
		coordinatesJSON, err = json.Marshal(CoordinatesJSON{
			Latitude:  point.Latitude(),
			Longitude: point.Longitude(),
		})
		if err != nil {
			return OrderJSON{}, err
		}
	}

	return OrderJSON{
		ID:                  aggregate.ID(),
		CustomerID:          aggregate.CustomerID(),
		RestaurantID:        aggregate.RestaurantID(),
		DriverID:            aggregate.DriverID(),
		CustomerName:        aggregate.CustomerName(),
		RestaurantName:      aggregate.RestaurantName(),
		DriverName:          aggregate.DriverName(),
		Items:               itemsJSON,
		TotalAmount:         aggregate.TotalAmount(),
		Status:              string(aggregate.Status()),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		DeliveryCoordinates: coordinatesJSON,
		CreatedAt:           aggregate.CreatedAt(),
		ConfirmedAt:         aggregate.ConfirmedAt(),
		PreparedAt:          aggregate.PreparedAt(),
		InTransitAt:         aggregate.InTransitAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		CancelledAt:         aggregate.CancelledAt(),
	}, nil
}

func driverFromDomain(aggregate *driver.Driver) DriverJSON {
	return DriverJSON{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Status:    string(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func customerFromDomain(aggregate *customer.Customer) (CustomerJSON, error) {
	addresses := aggregate.Addresses()
	if addresses == nil {
		addresses = []string{}
	}

	addressesJSON, err := json.Marshal(addresses)
	if err != nil {
		return CustomerJSON{}, err
	}

	return CustomerJSON{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Addresses: addressesJSON,
		CreatedAt: aggregate.CreatedAt(),
	}, nil
}

func restaurantFromDomain(aggregate *restaurant.Restaurant) (RestaurantJSON, error) {
	var coordinatesJSON json.RawMessage
	if point := aggregate.Coordinates(); point != nil {
		var err error
		coordinatesJSON, err = json.Marshal(CoordinatesJSON{
			Latitude:  point.Latitude(),
			Longitude: point.Longitude(),
		})
		if err != nil {
			return RestaurantJSON{}, err
		}
	}

	return RestaurantJSON{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Address:     aggregate.Address(),
		CuisineType: aggregate.CuisineType(),
		Coordinates: coordinatesJSON,
		CreatedAt:   aggregate.CreatedAt(),
	}, nil
}

func summaryFromService(summary services.AnalyticsSummary) AnalyticsSummaryJSON {
	topDrivers := make([]DriverPerformanceJSON, 0, len(summary.TopDrivers))
	for _, entry := range summary.TopDrivers {
		topDrivers = append(topDrivers, DriverPerformanceJSON{
			ID:              entry.ID,
			Name:            entry.Name,
			Deliveries:      entry.Deliveries,
			AvgDeliveryTime: entry.AvgDeliveryTime,
		})
	}

	topRestaurants := make([]RestaurantPerformanceJSON, 0, len(summary.TopRestaurants))
	for _, entry := range summary.TopRestaurants {
		topRestaurants = append(topRestaurants, RestaurantPerformanceJSON{
			ID:     entry.ID,
			Name:   entry.Name,
			Sales:  entry.Sales,
			Orders: entry.Orders,
		})
	}

	return AnalyticsSummaryJSON{
		TotalOrders:     summary.TotalOrders,
		TotalSales:      summary.TotalSales,
		AvgOrderValue:   summary.AvgOrderValue,
		AvgDeliveryTime: summary.AvgDeliveryTime,
		CompletionRate:  summary.CompletionRate,
		OrderStatuses: StatusCountsJSON{
			New:       summary.OrderStatuses.New,
			Assigned:  summary.OrderStatuses.Assigned,
			Preparing: summary.OrderStatuses.Preparing,
			InTransit: summary.OrderStatuses.InTransit,
			Delivered: summary.OrderStatuses.Delivered,
			Cancelled: summary.OrderStatuses.Cancelled,
		},
		TopDrivers:     topDrivers,
		TopRestaurants: topRestaurants,
	}
}
