// Package customer provides the Customer entity referenced by orders.
package customer

import (
	"errors"
	"time"

	"foodrush/internal/pkg/errs"
	"foodrush/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// ErrCustomerIDAlreadyAssigned is returned when attempting to overwrite a customer's identity.
var ErrCustomerIDAlreadyAssigned = errors.New("customer ID is immutable once assigned")

// Customer represents a customer profile. Orders reference customers by
// identifier and copy the name at creation time; the entity itself never owns
// orders.
type Customer struct {
	id        int64
	name      string
	addresses []string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer with the given saved delivery addresses.
func NewCustomer(name string, addresses []string, createdAt time.Time) (*Customer, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	return &Customer{
		name:      name,
		addresses: addresses,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id int64, name string, addresses []string, createdAt time.Time) (*Customer, error) {
	c, err := NewCustomer(name, addresses, createdAt)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// AssignID sets the persistence-assigned identifier exactly once.
func (c *Customer) AssignID(id int64) error {
	if c.id != 0 {
		return ErrCustomerIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("customer id")
	}

	c.id = id
	return nil
}

// ID returns the customer's unique identifier, or 0 when not yet persisted.
func (c *Customer) ID() int64 {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Addresses returns a copy of the saved delivery addresses.
func (c *Customer) Addresses() []string {
	addresses := make([]string, len(c.addresses))
	copy(addresses, c.addresses)
	return addresses
}

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}
