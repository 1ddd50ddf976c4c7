// Package order provides the Order aggregate for customer delivery orders.
//
// The package includes:
//   - Order: The aggregate root holding delivery details, lines, total and lifecycle
//   - Item: An immutable order line with a name and price snapshot
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentMethod: The declared way of paying on delivery
//
// Key business rules:
//   - An order is placed with at least one item and starts as Pending
//   - The total is the sum of item subtotals at placement and is never recomputed
//   - Status follows Pending -> Confirmed -> Preparing -> Delivered, and only
//     Pending or Confirmed orders can be Cancelled
package order
