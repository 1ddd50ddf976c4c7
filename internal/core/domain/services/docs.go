// Package services provides domain services that work across many orders
// at once, where the logic does not belong to a single aggregate root.
//
// The package includes:
//   - RevenueCalculator: monthly and daily revenue from delivered orders
//   - OrderBoard: groups orders into the admin dashboard columns
//   - CustomerAggregator: rebuilds customer summaries from order history
//
// All services are stateless and operate on already loaded aggregates.
package services
