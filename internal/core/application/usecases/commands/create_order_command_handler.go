package commands

import (
	"context"
	"time"

	"foodrush/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the referenced customer, restaurant, and optional driver before
// building the order, and copies their current names into the order's
// denormalized display fields unless the command carries overrides.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(1, 2, nil, items, 25.0, "", "", "", "", "12 Main St", nil)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // customer, restaurant, or driver reference did not resolve
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because reference resolution spans several repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted order.
// The referenced customer, restaurant, and driver are only read; creating an
// order never mutates them.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	restaurantRepo := uow.RestaurantRepository()

	resolvedCustomer, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	resolvedRestaurant, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	driverName := cmd.DriverNameOverride()
	if cmd.DriverID() != nil {
		resolvedDriver, driverErr := uow.DriverRepository().Get(ctx, *cmd.DriverID())
		if driverErr != nil {
			return nil, driverErr
		}
		if driverName == "" {
			driverName = resolvedDriver.Name()
		}
	}

	customerName := cmd.CustomerNameOverride()
	if customerName == "" {
		customerName = resolvedCustomer.Name()
	}

	restaurantName := cmd.RestaurantNameOverride()
	if restaurantName == "" {
		restaurantName = resolvedRestaurant.Name()
	}

	newOrder, err := order.NewOrder(
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.DriverID(),
		cmd.Items(),
		cmd.TotalAmount(),
		cmd.InitialStatus(),
		customerName,
		restaurantName,
		driverName,
		cmd.DeliveryAddress(),
		cmd.DeliveryCoordinates(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
