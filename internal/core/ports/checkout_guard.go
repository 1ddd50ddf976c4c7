package ports

import "context"

// CheckoutGuard remembers idempotency keys of submitted checkouts so a
// double-clicked submit does not create two orders.
type CheckoutGuard interface {
	// Claim records key. It returns false if the key was already claimed
	// and has not expired.
	Claim(ctx context.Context, key string) (bool, error)

	// Release forgets key, so a checkout that failed can be retried.
	Release(ctx context.Context, key string) error
}
