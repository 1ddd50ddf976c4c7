// Package customer holds the read-only customer summary derived from orders.
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer aggregates everything a phone number has ordered: the most recent
// name and address, how many orders were placed and when the last one was.
// Customers are never edited directly; they are rebuilt from orders.
type Customer struct {
	id          kernel.UUID
	name        string
	phone       string
	address     string
	totalOrders int
	lastOrderAt time.Time
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// IDForPhone returns the stable customer id for a phone number.
func IDForPhone(phone string) kernel.UUID {
	return kernel.UUIDFromName(strings.TrimSpace(phone))
}

// NewCustomer builds a summary keyed by phone. createdAt is the time of the
// customer's first order.
func NewCustomer(name, phone, address string, totalOrders int, lastOrderAt, createdAt time.Time) (*Customer, error) {
	c := &Customer{
		name:        strings.TrimSpace(name),
		address:     strings.TrimSpace(address),
		totalOrders: totalOrders,
		lastOrderAt: lastOrderAt,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	phone = strings.TrimSpace(phone)
	var errList []error
	if phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer phone"))
	}
	if totalOrders < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("total orders is invalid",
			fmt.Errorf("%d is not greater than 0", totalOrders)))
	}
	if lastOrderAt.Before(createdAt) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("last order time is invalid",
			fmt.Errorf("%s is before %s", lastOrderAt.Format(time.RFC3339), createdAt.Format(time.RFC3339))))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	c.phone = phone
	c.id = IDForPhone(phone)
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID        { return c.id }
func (c *Customer) Name() string           { return c.name }
func (c *Customer) Phone() string          { return c.phone }
func (c *Customer) Address() string        { return c.address }
func (c *Customer) TotalOrders() int       { return c.totalOrders }
func (c *Customer) LastOrderAt() time.Time { return c.lastOrderAt }
func (c *Customer) CreatedAt() time.Time   { return c.createdAt }
