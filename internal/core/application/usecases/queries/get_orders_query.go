// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database.
package queries

import (
	"encoding/json"
	"errors"
	"time"

	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

const defaultPageSize = 100

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves a page of orders, newest first, with an optional
// status filter.
//
// Example:
//
//	query, err := queries.NewGetOrdersQuery("delivered", 0, 20)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	statusFilter string
	skip         int
	limit        int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a page of orders.
// An empty statusFilter or the literal "all" disables status filtering; any
// other value is matched verbatim against the stored status, so an unknown
// value simply yields an empty page. A non-positive limit falls back to the
// default page size.
func NewGetOrdersQuery(statusFilter string, skip, limit int) (GetOrdersQuery, error) {
	if skip < 0 {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("skip", skip, 0, "unbounded")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}

	return GetOrdersQuery{
		statusFilter: statusFilter,
		skip:         skip,
		limit:        limit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// StatusFilter returns the raw status filter value.
func (q GetOrdersQuery) StatusFilter() string {
	return q.statusFilter
}

// HasStatusFilter reports whether the filter restricts the result set.
func (q GetOrdersQuery) HasStatusFilter() bool {
	return q.statusFilter != "" && q.statusFilter != "all"
}

// Skip returns the number of orders to skip.
func (q GetOrdersQuery) Skip() int {
	return q.skip
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// OrderResponse is the read model for a single order row. Items and delivery
// coordinates are passed through as the stored JSON documents.
type OrderResponse struct {
	ID                  int64
	CustomerID          int64
	RestaurantID        int64
	DriverID            *int64
	CustomerName        string
	RestaurantName      string
	DriverName          string
	Items               json.RawMessage
	TotalAmount         float64
	Status              string
	DeliveryAddress     string
	DeliveryCoordinates json.RawMessage
	CreatedAt           time.Time
	ConfirmedAt         *time.Time
	PreparedAt          *time.Time
	InTransitAt         *time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time
}
