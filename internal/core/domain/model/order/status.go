package order

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that an order
// only moves forward through the kitchen and can only be rejected before
// it starts being prepared.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly submitted order.
	Pending

	// Confirmed means the bakery accepted the order.
	Confirmed

	// Preparing means the order is being prepared and will go out for delivery.
	Preparing

	// Delivered means the customer received the order. This is a final state.
	Delivered

	// Cancelled means the bakery rejected the order. This is a final state.
	Cancelled
)

// getStatusStrings returns the wire names of every valid status.
func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getTransitions lists, for each status, the statuses it may move to.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and invalid statuses have no transitions
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {Delivered},
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Delivered, Cancelled}
}

// ParseStatus converts a lowercase wire name such as "preparing" into a Status.
//
// Returns:
//   - the matching Status
//   - a ValueIsInvalidError if the name is not a known status
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Preparing, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, or "unknown" for
// invalid values. It implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving from s to target is allowed.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a move to target.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if target is invalid or not reachable from s
//
// Example:
//
//	next, err := order.Pending.TransitionTo(order.Confirmed)
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to move to %s", s.String(), target.String()),
		)
	}
	return target, nil
}

// Confirm transitions Pending to Confirmed.
func (s Status) Confirm() (Status, error) {
	return s.TransitionTo(Confirmed)
}

// StartPreparing transitions Confirmed to Preparing.
func (s Status) StartPreparing() (Status, error) {
	return s.TransitionTo(Preparing)
}

// Deliver transitions Preparing to Delivered.
func (s Status) Deliver() (Status, error) {
	return s.TransitionTo(Delivered)
}

// Cancel transitions Pending or Confirmed to Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
