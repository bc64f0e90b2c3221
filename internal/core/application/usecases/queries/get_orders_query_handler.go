package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

const orderColumns = `
		id,
		customer_id,
		restaurant_id,
		driver_id,
		customer_name,
		restaurant_name,
		driver_name,
		items,
		total_amount,
		status,
		delivery_address,
		delivery_coordinates,
		created_at,
		confirmed_at,
		prepared_at,
		in_transit_at,
		delivered_at,
		cancelled_at`

// GetOrdersQueryHandler retrieves pages of orders from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the matching page of orders,
// newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)
	if query.HasStatusFilter() {
		rows, err = h.db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.StatusFilter(), query.Limit(), query.Skip()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Skip()).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow reads one row produced by a SELECT over orderColumns.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp                OrderResponse
		driverID            sql.NullInt64
		driverName          sql.NullString
		items               []byte
		deliveryCoordinates []byte
		confirmedAt         sql.NullTime
		preparedAt          sql.NullTime
		inTransitAt         sql.NullTime
		deliveredAt         sql.NullTime
		cancelledAt         sql.NullTime
	)

	err := rows.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.RestaurantID,
		&driverID,
		&resp.CustomerName,
		&resp.RestaurantName,
		&driverName,
		&items,
		&resp.TotalAmount,
		&resp.Status,
		&resp.DeliveryAddress,
		&deliveryCoordinates,
		&resp.CreatedAt,
		&confirmedAt,
		&preparedAt,
		&inTransitAt,
		&deliveredAt,
		&cancelledAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if driverID.Valid {
		id := driverID.Int64
		resp.DriverID = &id
	}
	resp.DriverName = driverName.String
	resp.Items = json.RawMessage(items)
	if len(deliveryCoordinates) > 0 {
		resp.DeliveryCoordinates = json.RawMessage(deliveryCoordinates)
	}
	resp.ConfirmedAt = nullableTime(confirmedAt)
	resp.PreparedAt = nullableTime(preparedAt)
	resp.InTransitAt = nullableTime(inTransitAt)
	resp.DeliveredAt = nullableTime(deliveredAt)
	resp.CancelledAt = nullableTime(cancelledAt)

	return resp, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
