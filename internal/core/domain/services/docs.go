// Package services provides domain services that compute behavior spanning
// multiple domain entities in the food-delivery backend. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - AnalyticsAggregator: A read-only domain service computing summary
//     statistics over a set of orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
