package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodrush/internal/core/application/usecases/commands"
	"foodrush/internal/core/application/usecases/queries"
	"foodrush/internal/core/domain/model/kernel"
)

// GetDrivers handles GET /api/drivers - lists drivers, optionally filtered
// with ?status=.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetDriversQuery(ctx.QueryParam("status"))

	drivers, err := s.getDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]DriverJSON, len(drivers))
	for i, resp := range drivers {
		response[i] = DriverJSON{
			ID:        resp.ID,
			Name:      resp.Name,
			Status:    resp.Status,
			CreatedAt: resp.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/drivers - registers an available driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var request CreateDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(request.Name)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, driverFromDomain(created))
}

// GetCustomers handles GET /api/customers - lists all customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetCustomersQuery()

	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]CustomerJSON, len(customers))
	for i, resp := range customers {
		response[i] = CustomerJSON{
			ID:        resp.ID,
			Name:      resp.Name,
			Addresses: resp.Addresses,
			CreatedAt: resp.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CreateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(request.Name, request.Addresses)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := customerFromDomain(created)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetRestaurants handles GET /api/restaurants - lists all restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	query := queries.NewGetRestaurantsQuery()

	restaurants, err := s.getRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]RestaurantJSON, len(restaurants))
	for i, resp := range restaurants {
		response[i] = RestaurantJSON{
			ID:          resp.ID,
			Name:        resp.Name,
			Address:     resp.Address,
			CuisineType: resp.CuisineType,
			Coordinates: resp.Coordinates,
			CreatedAt:   resp.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRestaurant handles POST /api/restaurants - registers a restaurant.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var request CreateRestaurantRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var coordinates *kernel.GeoPoint
	if request.Coordinates != nil {
		point, err := kernel.NewGeoPoint(request.Coordinates.Latitude, request.Coordinates.Longitude)
		if err != nil {
			return errorResponse(ctx, err)
		}
		coordinates = &point
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		request.Name,
		request.Address,
		request.CuisineType,
		coordinates,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := restaurantFromDomain(created)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}
