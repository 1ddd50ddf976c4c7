package kernel

import (
	"fmt"

	"bakery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString or UUIDFromName")

// customerNamespace scopes name-based identifiers derived from customer phone numbers.
var customerNamespace = uuid.MustParse("6f1c2b3e-8a47-4d0e-9a55-5b7e0f3c9d21")

// UUID is a value object identifying orders, order items and customers.
// It wraps github.com/google/uuid and is immutable.
//
// The zero value is invalid; build one with NewUUID, UUIDFromString or
// UUIDFromName.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	customerID := kernel.UUIDFromName("11999990000")
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the textual form of a UUID, as received in URLs or
// read back from storage.
//
// Example:
//
//	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromName derives a deterministic (version 5) UUID from name. The same
// name always yields the same identifier, which lets customer summaries be
// keyed by phone number and upserted repeatedly.
func UUIDFromName(name string) UUID {
	return UUID{id: uuid.NewSHA1(customerNamespace, []byte(name))}
}

// UUIDFromGoogle wraps an already parsed uuid.UUID, typically one scanned from
// a database column.
func UUIDFromGoogle(id uuid.UUID) UUID {
	return UUID{id: id}
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Value returns the underlying uuid.UUID. The result is a copy.
func (u UUID) Value() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
