package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"foodrush/internal/core/application/usecases/commands"
	"foodrush/internal/core/application/usecases/queries"
	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/core/domain/model/order"
)

// GetOrders handles GET /api/orders - lists orders, newest first.
// Supports ?status=, ?skip= and ?limit= query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	skip, err := intQueryParam(ctx, "skip", 0)
	if err != nil {
		return badRequest(ctx, "skip must be an integer")
	}

	limit, err := intQueryParam(ctx, "limit", 0)
	if err != nil {
		return badRequest(ctx, "limit must be an integer")
	}

	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("status"), skip, limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderJSON, len(orders))
	for i, resp := range orders {
		response[i] = orderFromReadModel(resp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "order id must be an integer")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(resp))
}

// CreateOrder handles POST /api/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	items := make([]order.LineItem, 0, len(request.Items))
	for _, doc := range request.Items {
		item, err := order.NewLineItem(doc.Name, doc.Price, doc.Quantity, doc.Subtotal)
		if err != nil {
			return errorResponse(ctx, err)
		}
		items = append(items, item)
	}

	var coordinates *kernel.GeoPoint
	if request.DeliveryCoordinates != nil {
		point, err := kernel.NewGeoPoint(
			request.DeliveryCoordinates.Latitude,
			request.DeliveryCoordinates.Longitude,
		)
		if err != nil {
			return errorResponse(ctx, err)
		}
		coordinates = &point
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.CustomerID,
		request.RestaurantID,
		request.DriverID,
		items,
		request.TotalAmount,
		order.Status(request.Status),
		request.CustomerName,
		request.RestaurantName,
		request.DriverName,
		request.DeliveryAddress,
		coordinates,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := orderFromDomain(created)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// ChangeOrderStatus handles PUT /api/orders/:id/status - moves an order to a
// new workflow status and stamps the matching transition timestamp.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "order id must be an integer")
	}

	var request ChangeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(request.Status))
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := orderFromDomain(updated)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignDriver handles PUT /api/orders/:id/assign-driver - attaches a driver
// to an order, forcing the order into the assigned status and marking the
// driver busy.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "order id must be an integer")
	}

	var request AssignDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, request.DriverID, request.DriverName)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := orderFromDomain(updated)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

func intQueryParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
