package order

import (
	"fmt"

	"foodrush/internal/pkg/errs"
)

// Status represents the workflow state of an order. It is the single source
// of truth for where an order sits in the delivery lifecycle.
//
// The usual progression is:
//
//	new ──> assigned ──> preparing ──> in-transit ──> delivered
//	                                         │
//	                    cancelled <──────────┘
//
// Statuses are stored and exchanged over the wire as their literal string
// values. The hyphen in "in-transit" is part of the contract.
type Status string

const (
	// StatusNew is the initial status of a freshly created order.
	StatusNew Status = "new"

	// StatusAssigned indicates a driver has been assigned to the order.
	// Entering this status stamps no timestamp.
	StatusAssigned Status = "assigned"

	// StatusPreparing indicates the restaurant confirmed and is preparing the order.
	StatusPreparing Status = "preparing"

	// StatusInTransit indicates the driver picked up the order and is delivering it.
	StatusInTransit Status = "in-transit"

	// StatusDelivered indicates the order reached the customer.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the order was cancelled.
	StatusCancelled Status = "cancelled"
)

// getValidStatuses returns the set of statuses an order may hold.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusNew:       {},
		StatusAssigned:  {},
		StatusPreparing: {},
		StatusInTransit: {},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// AllStatuses returns the six valid statuses in lifecycle order.
// Useful for building per-status aggregations.
func AllStatuses() []Status {
	return []Status{
		StatusNew,
		StatusAssigned,
		StatusPreparing,
		StatusInTransit,
		StatusDelivered,
		StatusCancelled,
	}
}

// Validate checks that the Status is one of the six enumerated values.
// Values from external sources (API, database) must pass this check before use.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsActive reports whether an order in this status still occupies its driver.
// Active statuses are assigned, preparing, and in-transit.
func (s Status) IsActive() bool {
	return s == StatusAssigned || s == StatusPreparing || s == StatusInTransit
}
