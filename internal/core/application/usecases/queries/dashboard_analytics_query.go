package queries

import (
	"errors"

	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/core/domain/services"
	"foodrush/internal/pkg/guard"
)

var ErrDashboardAnalyticsQueryIsNotConstructed = errors.New(
	"DashboardAnalyticsQuery must be created via NewDashboardAnalyticsQuery constructor",
)

// DashboardAnalyticsQuery computes the reduced summary for the dashboard: the
// same totals, status counts, delivery time, and completion rate as the full
// report, but with the top-driver and top-restaurant lists always empty. The
// dashboard is polled frequently, so the cheaper read path matters.
type DashboardAnalyticsQuery struct {
	period string

	guard guard.ConstructorGuard
}

// NewDashboardAnalyticsQuery creates a dashboard query. An empty period
// defaults to "week".
func NewDashboardAnalyticsQuery(period string) DashboardAnalyticsQuery {
	if period == "" {
		period = kernel.PeriodWeek
	}

	return DashboardAnalyticsQuery{
		period: period,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q DashboardAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrDashboardAnalyticsQueryIsNotConstructed)
}

// Period returns the requested window period.
func (q DashboardAnalyticsQuery) Period() string {
	return q.period
}

// DashboardAnalyticsResponse is the reduced dashboard summary.
type DashboardAnalyticsResponse struct {
	Summary services.AnalyticsSummary
}
