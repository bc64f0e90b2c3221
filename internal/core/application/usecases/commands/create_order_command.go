package commands

import (
	"errors"

	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/core/domain/model/order"
	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new order.
// Encapsulates the references, items snapshot, monetary total, destination,
// and the optional display-name overrides.
//
// The initial status defaults to "new"; a non-empty InitialStatus constructs
// the order directly into a later status (data import/migration escape hatch).
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   int64
	restaurantID int64
	driverID     *int64

	items       []order.LineItem
	totalAmount float64

	initialStatus order.Status

	customerNameOverride   string
	restaurantNameOverride string
	driverNameOverride     string

	deliveryAddress     string
	deliveryCoordinates *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the required references and, when supplied, the initial status.
// An empty initialStatus means "new".
func NewCreateOrderCommand(
	customerID int64,
	restaurantID int64,
	driverID *int64,
	items []order.LineItem,
	totalAmount float64,
	initialStatus order.Status,
	customerNameOverride string,
	restaurantNameOverride string,
	driverNameOverride string,
	deliveryAddress string,
	deliveryCoordinates *kernel.GeoPoint,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		items:                  items,
		totalAmount:            totalAmount,
		customerNameOverride:   customerNameOverride,
		restaurantNameOverride: restaurantNameOverride,
		driverNameOverride:     driverNameOverride,
		deliveryAddress:        deliveryAddress,
		deliveryCoordinates:    deliveryCoordinates,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setDriverID(driverID),
		cmd.setInitialStatus(initialStatus),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the referenced customer identifier.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// RestaurantID returns the referenced restaurant identifier.
func (c CreateOrderCommand) RestaurantID() int64 {
	return c.restaurantID
}

// DriverID returns the optional referenced driver identifier.
func (c CreateOrderCommand) DriverID() *int64 {
	return c.driverID
}

// Items returns the line-items snapshot.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

// TotalAmount returns the order's monetary total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// InitialStatus returns the requested initial status (defaulted to "new").
func (c CreateOrderCommand) InitialStatus() order.Status {
	return c.initialStatus
}

// CustomerNameOverride returns the customer display-name override, if any.
func (c CreateOrderCommand) CustomerNameOverride() string {
	return c.customerNameOverride
}

// RestaurantNameOverride returns the restaurant display-name override, if any.
func (c CreateOrderCommand) RestaurantNameOverride() string {
	return c.restaurantNameOverride
}

// DriverNameOverride returns the driver display-name override, if any.
func (c CreateOrderCommand) DriverNameOverride() string {
	return c.driverNameOverride
}

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryCoordinates returns the optional destination coordinates.
func (c CreateOrderCommand) DeliveryCoordinates() *kernel.GeoPoint {
	return c.deliveryCoordinates
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customer id")
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setDriverID(driverID *int64) error {
	if driverID != nil && *driverID <= 0 {
		return errs.NewValueIsRequiredError("driver id")
	}
	c.driverID = driverID
	return nil
}

func (c *CreateOrderCommand) setInitialStatus(initialStatus order.Status) error {
	if initialStatus == "" {
		c.initialStatus = order.StatusNew
		return nil
	}
	if err := initialStatus.Validate(); err != nil {
		return err
	}
	c.initialStatus = initialStatus
	return nil
}
