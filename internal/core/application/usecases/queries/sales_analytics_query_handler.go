package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/core/domain/model/order"
	"foodrush/internal/core/domain/services"

	"gorm.io/gorm"
)

// SalesAnalyticsQueryHandler computes the sales analytics report. Orders in
// the window are rehydrated into domain aggregates and summarized in memory;
// the per-day time series is a separate SQL aggregation over the same window
// so both views agree on which orders qualify.
type SalesAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewSalesAnalyticsQueryHandler creates a handler for sales analytics queries.
func NewSalesAnalyticsQueryHandler(db *gorm.DB) SalesAnalyticsQueryHandler {
	return SalesAnalyticsQueryHandler{db: db}
}

// Handle executes the analytics computation for the query's window.
func (h SalesAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query SalesAnalyticsQuery,
) (SalesAnalyticsResponse, error) {
	if err := query.Validate(); err != nil {
		return SalesAnalyticsResponse{}, err
	}

	window := kernel.NewTimeWindow(query.Period(), query.StartDate(), query.EndDate(), time.Now().UTC())

	orders, err := loadOrdersInWindow(ctx, h.db, window)
	if err != nil {
		return SalesAnalyticsResponse{}, err
	}

	resp := SalesAnalyticsResponse{
		Summary:    services.NewAnalyticsAggregator().Summarize(orders),
		TimeSeries: make([]TimeSeriesPoint, 0),
	}

	if len(orders) > 0 {
		resp.TimeSeries, err = loadTimeSeries(ctx, h.db, window)
		if err != nil {
			return SalesAnalyticsResponse{}, err
		}
	}

	return resp, nil
}

func loadOrdersInWindow(
	ctx context.Context,
	db *gorm.DB,
	window *kernel.TimeWindow,
) ([]*order.Order, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if window != nil {
		rows, err = db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE created_at BETWEEN ? AND ?
	`, window.Start(), window.End()).Rows()
	} else {
		rows, err = db.WithContext(ctx).Raw(`
		SELECT` + orderColumns + `
		FROM orders
	`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		row, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		domainOrder, restoreErr := restoreOrderFromRow(row)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, domainOrder)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func loadTimeSeries(
	ctx context.Context,
	db *gorm.DB,
	window *kernel.TimeWindow,
) ([]TimeSeriesPoint, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if window != nil {
		rows, err = db.WithContext(ctx).Raw(`
		SELECT DATE(created_at) AS day, COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS sales
		FROM orders
		WHERE created_at BETWEEN ? AND ?
		GROUP BY DATE(created_at)
		ORDER BY day
	`, window.Start(), window.End()).Rows()
	} else {
		rows, err = db.WithContext(ctx).Raw(`
		SELECT DATE(created_at) AS day, COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS sales
		FROM orders
		GROUP BY DATE(created_at)
		ORDER BY day
	`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := make([]TimeSeriesPoint, 0)
	for rows.Next() {
		var (
			day   time.Time
			point TimeSeriesPoint
		)
		if err = rows.Scan(&day, &point.Orders, &point.Sales); err != nil {
			return nil, err
		}
		point.Date = day.Format(time.DateOnly)
		series = append(series, point)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return series, nil
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

// restoreOrderFromRow rehydrates a database row into a domain order so the
// aggregator can work with domain semantics instead of raw columns.
func restoreOrderFromRow(row OrderResponse) (*order.Order, error) {
	var itemDocs []lineItemDocument
	if err := json.Unmarshal(row.Items, &itemDocs); err != nil {
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
	if len(row.DeliveryCoordinates) > 0 {
		var doc coordinatesDocument
		if err := json.Unmarshal(row.DeliveryCoordinates, &doc); err != nil {
			return nil, err
		}
		point, err := kernel.NewGeoPoint(doc.Latitude, doc.Longitude)
		if err != nil {
			return nil, err
		}
		coordinates = &point
	}

	return order.RestoreOrder(
		row.ID,
		row.CustomerID,
		row.RestaurantID,
		row.DriverID,
		items,
		row.TotalAmount,
		order.Status(row.Status),
		row.CustomerName,
		row.RestaurantName,
		row.DriverName,
		row.DeliveryAddress,
		coordinates,
		row.CreatedAt,
		row.ConfirmedAt,
		row.PreparedAt,
		row.InTransitAt,
		row.DeliveredAt,
		row.CancelledAt,
	)
}
