// Package http exposes the application use cases over a JSON REST API.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodrush/internal/core/application/usecases/commands"
	"foodrush/internal/core/application/usecases/queries"
	"foodrush/internal/pkg/errs"
)

// Server coordinates between echo handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	createDriverHandler      commands.CreateDriverCommandHandler
	createCustomerHandler    commands.CreateCustomerCommandHandler
	createRestaurantHandler  commands.CreateRestaurantCommandHandler

	// Query handlers
	getOrdersHandler          queries.GetOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	getDriversHandler         queries.GetDriversQueryHandler
	getCustomersHandler       queries.GetCustomersQueryHandler
	getRestaurantsHandler     queries.GetRestaurantsQueryHandler
	salesAnalyticsHandler     queries.SalesAnalyticsQueryHandler
	dashboardAnalyticsHandler queries.DashboardAnalyticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getDriversHandler queries.GetDriversQueryHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
	getRestaurantsHandler queries.GetRestaurantsQueryHandler,
	salesAnalyticsHandler queries.SalesAnalyticsQueryHandler,
	dashboardAnalyticsHandler queries.DashboardAnalyticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		assignDriverHandler:       assignDriverHandler,
		createDriverHandler:       createDriverHandler,
		createCustomerHandler:     createCustomerHandler,
		createRestaurantHandler:   createRestaurantHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getDriversHandler:         getDriversHandler,
		getCustomersHandler:       getCustomersHandler,
		getRestaurantsHandler:     getRestaurantsHandler,
		salesAnalyticsHandler:     salesAnalyticsHandler,
		dashboardAnalyticsHandler: dashboardAnalyticsHandler,
	}
}

// RegisterRoutes attaches every API route to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.PUT("/orders/:id/assign-driver", s.AssignDriver)

	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/restaurants", s.GetRestaurants)
	api.POST("/restaurants", s.CreateRestaurant)

	api.POST("/analytics/sales", s.SalesAnalytics)
	api.GET("/analytics/dashboard", s.DashboardAnalytics)
}

// errorResponse maps domain errors onto HTTP status codes. Unknown errors are
// reported as 500 without leaking internals.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
	}
}

func badRequest(ctx echo.Context, detail string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: detail})
}
