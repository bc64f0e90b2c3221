package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodrush/internal/core/application/usecases/queries"
)

// SalesAnalytics handles POST /api/analytics/sales - computes the sales
// report for the requested period.
func (s *Server) SalesAnalytics(ctx echo.Context) error {
	var request SalesAnalyticsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query := queries.NewSalesAnalyticsQuery(request.Period, request.StartDate, request.EndDate)

	report, err := s.salesAnalyticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	timeSeries := make([]TimeSeriesPointJSON, 0, len(report.TimeSeries))
	for _, point := range report.TimeSeries {
		timeSeries = append(timeSeries, TimeSeriesPointJSON{
			Date:   point.Date,
			Orders: point.Orders,
			Sales:  point.Sales,
		})
	}

	return ctx.JSON(http.StatusOK, SalesAnalyticsJSON{
		Summary:    summaryFromService(report.Summary),
		TimeSeries: timeSeries,
	})
}

// DashboardAnalytics handles GET /api/analytics/dashboard - returns the
// lightweight summary for the admin landing page. Accepts ?period=,
// defaulting to the last week.
func (s *Server) DashboardAnalytics(ctx echo.Context) error {
	query := queries.NewDashboardAnalyticsQuery(ctx.QueryParam("period"))

	report, err := s.dashboardAnalyticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summaryFromService(report.Summary))
}
