package order

import (
	"errors"
	"time"

	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when attempting to overwrite an order's
	// identity. Identifiers are immutable once assigned.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is immutable once assigned")
)

// Order represents a customer order moving through the delivery lifecycle.
// It is the aggregate root for the order workflow: creation, status
// transitions, and driver assignment.
//
// Order follows these invariants:
//   - Customer and restaurant references are required; the driver reference is optional
//   - Display names are value copies taken at write time; a later rename of the
//     source entity does not update past orders
//   - The monetary total is a scalar set at creation and never recomputed from
//     line items
//   - Each status transition stamps at most one timestamp field, per a fixed
//     mapping; re-entering a status overwrites its timestamp
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct { //nolint:recvcheck //using for validation
	// id is the unique identifier, assigned by the persistence layer on insert
	id int64

	// customerID and restaurantID are weak references to their owning stores
	customerID   int64
	restaurantID int64

	// driverID is the assigned driver's ID (nil if unassigned)
	driverID *int64

	// Display name snapshots, copied at creation/assignment time
	customerName   string
	restaurantName string
	driverName     string

	// items is the opaque line-items snapshot
	items []LineItem

	// totalAmount is the order's monetary total
	totalAmount float64

	// status is the current workflow state
	status Status

	// deliveryAddress plus optional coordinates for the destination
	deliveryAddress     string
	deliveryCoordinates *kernel.GeoPoint

	// Lifecycle timestamps. createdAt is always set; the rest are stamped by
	// their corresponding transitions. preparedAt exists in the schema and
	// wire contract but no transition writes it.
	createdAt   time.Time
	confirmedAt *time.Time
	preparedAt  *time.Time
	inTransitAt *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with validation. The order has no identifier
// yet; the persistence layer assigns one via AssignID on insert.
//
// The initial status is normally StatusNew, but callers may construct an order
// directly into a later status. This is an escape hatch for data import and
// migration and is honored deliberately.
//
// Only createdAt is set among the lifecycle timestamps.
func NewOrder(
	customerID int64,
	restaurantID int64,
	driverID *int64,
	items []LineItem,
	totalAmount float64,
	status Status,
	customerName string,
	restaurantName string,
	driverName string,
	deliveryAddress string,
	deliveryCoordinates *kernel.GeoPoint,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		totalAmount:     totalAmount,
		customerName:    customerName,
		restaurantName:  restaurantName,
		driverName:      driverName,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDriverID(driverID),
		o.setItems(items),
		o.setStatus(status),
		o.setDeliveryCoordinates(deliveryCoordinates),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its assigned
// identifier and all lifecycle timestamps. Used only by repository adapters.
func RestoreOrder(
	id int64,
	customerID int64,
	restaurantID int64,
	driverID *int64,
	items []LineItem,
	totalAmount float64,
	status Status,
	customerName string,
	restaurantName string,
	driverName string,
	deliveryAddress string,
	deliveryCoordinates *kernel.GeoPoint,
	createdAt time.Time,
	confirmedAt *time.Time,
	preparedAt *time.Time,
	inTransitAt *time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(
		customerID, restaurantID, driverID,
		items, totalAmount, status,
		customerName, restaurantName, driverName,
		deliveryAddress, deliveryCoordinates, createdAt,
	)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.confirmedAt = confirmedAt
	o.preparedAt = preparedAt
	o.inTransitAt = inTransitAt
	o.deliveredAt = deliveredAt
	o.cancelledAt = cancelledAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AssignID sets the persistence-assigned identifier exactly once.
// Returns ErrOrderIDAlreadyAssigned if the order already has an identity.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	o.id = id
	return nil
}

// ChangeStatus transitions the order into newStatus and stamps the timestamp
// tied to that status with the supplied transition time:
//
//	preparing  -> confirmed_at
//	in-transit -> in_transit_at
//	delivered  -> delivered_at
//	cancelled  -> cancelled_at
//
// StatusNew and StatusAssigned stamp nothing. Timestamps are not
// monotonic-guarded: re-entering a status overwrites its timestamp with the
// new transition time. This reproduces the observed production behavior and
// must not be silently hardened.
func (o *Order) ChangeStatus(newStatus Status, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus

	stamp := at
	switch newStatus {
	case StatusPreparing:
		o.confirmedAt = &stamp
	case StatusInTransit:
		o.inTransitAt = &stamp
	case StatusDelivered:
		o.deliveredAt = &stamp
	case StatusCancelled:
		o.cancelledAt = &stamp
	case StatusNew, StatusAssigned:
		// no timestamp for these statuses
	}

	return nil
}

// AssignDriver sets the order's driver reference and display-name snapshot and
// unconditionally forces the status to StatusAssigned, whatever status the
// order was in. Assignment is defined as the transition into assigned, so the
// forced overwrite is intended behavior. No timestamp is stamped.
//
// The companion Driver-side mutation (marking the driver busy) is coordinated
// by the application layer within one transaction.
func (o *Order) AssignDriver(driverID int64, driverName string) error {
	if driverID <= 0 {
		return errs.NewValueIsRequiredError("driver id")
	}

	o.driverID = &driverID
	o.driverName = driverName
	o.status = StatusAssigned
	return nil
}

// ID returns the order's unique identifier, or 0 when not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the referenced customer's identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// RestaurantID returns the referenced restaurant's identifier.
func (o *Order) RestaurantID() int64 {
	return o.restaurantID
}

// DriverID returns the assigned driver's identifier, or nil if unassigned.
func (o *Order) DriverID() *int64 {
	return o.driverID
}

// CustomerName returns the customer display-name snapshot.
func (o *Order) CustomerName() string {
	return o.customerName
}

// RestaurantName returns the restaurant display-name snapshot.
func (o *Order) RestaurantName() string {
	return o.restaurantName
}

// DriverName returns the driver display-name snapshot.
func (o *Order) DriverName() string {
	return o.driverName
}

// Items returns a copy of the line-items snapshot.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order's monetary total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the destination address string.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryCoordinates returns the optional destination coordinates.
func (o *Order) DeliveryCoordinates() *kernel.GeoPoint {
	return o.deliveryCoordinates
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns the timestamp of the transition into preparing, if any.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// PreparedAt returns the prepared timestamp. No transition writes this field;
// it is carried for schema and wire compatibility.
func (o *Order) PreparedAt() *time.Time {
	return o.preparedAt
}

// InTransitAt returns the timestamp of the transition into in-transit, if any.
func (o *Order) InTransitAt() *time.Time {
	return o.inTransitAt
}

// DeliveredAt returns the timestamp of the transition into delivered, if any.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns the timestamp of the transition into cancelled, if any.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDriverID(driverID *int64) error {
	if driverID != nil && *driverID <= 0 {
		return errs.NewValueIsRequiredError("driver id")
	}
	o.driverID = driverID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDeliveryCoordinates(point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	o.deliveryCoordinates = point
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
