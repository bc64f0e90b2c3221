package queries

import (
	"context"
	"time"

	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/core/domain/services"

	"gorm.io/gorm"
)

// DashboardAnalyticsQueryHandler computes the reduced dashboard summary.
type DashboardAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewDashboardAnalyticsQueryHandler creates a handler for dashboard queries.
func NewDashboardAnalyticsQueryHandler(db *gorm.DB) DashboardAnalyticsQueryHandler {
	return DashboardAnalyticsQueryHandler{db: db}
}

// Handle computes the summary for the query's period and blanks the top
// lists.
func (h DashboardAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query DashboardAnalyticsQuery,
) (DashboardAnalyticsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardAnalyticsResponse{}, err
	}

	window := kernel.NewTimeWindow(query.Period(), nil, nil, time.Now().UTC())

	orders, err := loadOrdersInWindow(ctx, h.db, window)
	if err != nil {
		return DashboardAnalyticsResponse{}, err
	}

	summary := services.NewAnalyticsAggregator().Summarize(orders)
	summary.TopDrivers = make([]services.DriverPerformance, 0)
	summary.TopRestaurants = make([]services.RestaurantPerformance, 0)

	return DashboardAnalyticsResponse{Summary: summary}, nil
}
