// Package order provides domain entities and business logic for order management
// in the food-delivery backend. It implements the Order aggregate root with
// lifecycle management and status-driven timestamping.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: The enumerated workflow state with its fixed timestamp mapping
//   - LineItem: A value object for the items snapshot carried by an order
//
// Key business rules:
//   - Orders reference customers, restaurants, and drivers by identifier only
//   - Display names are copied at write time and never kept in sync afterward
//   - Each status transition stamps exactly one timestamp field; re-entering a
//     status overwrites its timestamp with the transition time
//   - Driver assignment unconditionally forces the order into the assigned status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
