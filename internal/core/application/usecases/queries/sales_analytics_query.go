package queries

import (
	"errors"
	"time"

	"foodrush/internal/core/domain/services"
	"foodrush/internal/pkg/guard"
)

var ErrSalesAnalyticsQueryIsNotConstructed = errors.New(
	"SalesAnalyticsQuery must be created via NewSalesAnalyticsQuery constructor",
)

// SalesAnalyticsQuery computes the full sales analytics report over the
// orders created inside the requested date window.
//
// The period selects the window: "today" covers the current UTC calendar
// day, "week" the trailing 7 days, "month" the trailing 30 days, and
// "custom" uses the explicit bounds. Any other period, or a "custom" with a
// missing bound, disables filtering and aggregates every order.
type SalesAnalyticsQuery struct {
	period    string
	startDate *time.Time
	endDate   *time.Time

	guard guard.ConstructorGuard
}

// NewSalesAnalyticsQuery creates an analytics query for the given period.
// The explicit bounds are only consulted when period is "custom".
func NewSalesAnalyticsQuery(period string, startDate, endDate *time.Time) SalesAnalyticsQuery {
	return SalesAnalyticsQuery{
		period:    period,
		startDate: startDate,
		endDate:   endDate,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SalesAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrSalesAnalyticsQueryIsNotConstructed)
}

// Period returns the requested window period.
func (q SalesAnalyticsQuery) Period() string {
	return q.period
}

// StartDate returns the explicit window start, or nil.
func (q SalesAnalyticsQuery) StartDate() *time.Time {
	return q.startDate
}

// EndDate returns the explicit window end, or nil.
func (q SalesAnalyticsQuery) EndDate() *time.Time {
	return q.endDate
}

// TimeSeriesPoint is one calendar day of order activity.
type TimeSeriesPoint struct {
	Date   string
	Orders int
	Sales  float64
}

// SalesAnalyticsResponse is the full analytics report: the aggregate summary
// plus a per-day time series. The time series is empty when no orders fall
// inside the window.
type SalesAnalyticsResponse struct {
	Summary    services.AnalyticsSummary
	TimeSeries []TimeSeriesPoint
}
