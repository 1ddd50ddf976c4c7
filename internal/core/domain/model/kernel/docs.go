// Package kernel holds the value objects shared by every bakery aggregate:
// identifiers (UUID) and amounts of money (Money).
//
// Both types are immutable and safe for concurrent use. A zero UUID is
// invalid and fails Validate; a zero Money is simply 0.00.
package kernel
