package commands

import (
	"errors"
	"fmt"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")
)

// OrderLine is one requested product and quantity. Prices are never taken
// from the client; they are read from the catalog when the order is placed.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

// PlaceOrderCommand represents a checkout submission.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), "Ana", "11999990000", "Rua A, 1",
//	    []OrderLine{{ProductID: 1, Quantity: 2}}, "pix", "", idempotencyKey)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, checkoutGuard, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	details        order.DeliveryDetails
	lines          []OrderLine
	paymentMethod  order.PaymentMethod
	notes          string
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the checkout form. Lines for the same
// product are merged. The idempotency key is optional.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	name, phone, address string,
	lines []OrderLine,
	paymentMethod string,
	notes string,
	idempotencyKey string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		notes:          strings.TrimSpace(notes),
		idempotencyKey: strings.TrimSpace(idempotencyKey),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDetails(name, phone, address),
		cmd.setLines(lines),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID               { return c.orderID }
func (c PlaceOrderCommand) Details() order.DeliveryDetails     { return c.details }
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }
func (c PlaceOrderCommand) Notes() string                      { return c.notes }
func (c PlaceOrderCommand) IdempotencyKey() string             { return c.idempotencyKey }

// Lines returns a copy of the merged order lines in first-seen order.
func (c PlaceOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ProductIDs returns the distinct requested product ids.
func (c PlaceOrderCommand) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.lines))
	for _, line := range c.lines {
		ids = append(ids, line.ProductID)
	}
	return ids
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setDetails(name, phone, address string) error {
	details, err := order.NewDeliveryDetails(name, phone, address)
	if err != nil {
		return err
	}
	c.details = details
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}

	index := make(map[int64]int, len(lines))
	merged := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		if line.ProductID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("product id is invalid",
				fmt.Errorf("%d is not greater than 0", line.ProductID))
		}
		if line.Quantity < 1 || line.Quantity > order.MaxItemQuantity {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, order.MaxItemQuantity)
		}
		if i, ok := index[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			if merged[i].Quantity > order.MaxItemQuantity {
				return errs.NewValueIsOutOfRangeError("quantity", merged[i].Quantity, 1, order.MaxItemQuantity)
			}
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}

	c.lines = merged
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method string) error {
	m, err := order.ParsePaymentMethod(method)
	if err != nil {
		return err
	}
	c.paymentMethod = m
	return nil
}
