// Package driver provides the Driver entity and its availability states.
// Drivers are referenced by orders; their availability is mutated as a side
// effect of driver assignment and released once their active orders finish.
package driver

import (
	"errors"
	"fmt"
	"time"

	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

// Status represents a driver's availability.
type Status string

const (
	// StatusAvailable means the driver can take new orders. This is the default.
	StatusAvailable Status = "available"
	// StatusBusy means the driver is occupied with an assigned order.
	StatusBusy Status = "busy"
	// StatusOffline means the driver is not working.
	StatusOffline Status = "offline"
)

// Validate checks the status is one of the enumerated values.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusBusy, StatusOffline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("driver status is invalid",
			fmt.Errorf("%q is not a valid driver status", string(s)))
	}
}

// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

// ErrDriverIDAlreadyAssigned is returned when attempting to overwrite a driver's identity.
var ErrDriverIDAlreadyAssigned = errors.New("driver ID is immutable once assigned")

// Driver represents a delivery driver. The Order Lifecycle Manager flips a
// driver to busy when assigning it to an order; the release job flips it back
// to available once no active order references it.
type Driver struct {
	id        int64
	name      string
	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewDriver creates a driver in the available status.
func NewDriver(name string, createdAt time.Time) (*Driver, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	return &Driver{
		name:      name,
		status:    StatusAvailable,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id int64, name string, status Status, createdAt time.Time) (*Driver, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDriver(name, createdAt)
	if err != nil {
		return nil, err
	}

	d.id = id
	d.status = status
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// AssignID sets the persistence-assigned identifier exactly once.
func (d *Driver) AssignID(id int64) error {
	if d.id != 0 {
		return ErrDriverIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("driver id")
	}

	d.id = id
	return nil
}

// MarkBusy flips the driver to busy. Called when an order is assigned to it.
func (d *Driver) MarkBusy() {
	d.status = StatusBusy
}

// Release flips the driver back to available.
func (d *Driver) Release() {
	d.status = StatusAvailable
}

// ID returns the driver's unique identifier, or 0 when not yet persisted.
func (d *Driver) ID() int64 {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Status returns the driver's availability status.
func (d *Driver) Status() Status {
	return d.status
}

// CreatedAt returns the creation timestamp.
func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}
