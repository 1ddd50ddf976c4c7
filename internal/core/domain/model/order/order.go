package order

import (
	"errors"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when placing an order without any lines.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Order represents a customer delivery order. It is the aggregate root that
// owns its lines and manages the lifecycle from submission to delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have at least one item
//   - totalAmount equals the sum of item subtotals when the order is placed and
//     is never recomputed afterwards
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// details are the customer name, phone and delivery address
	details DeliveryDetails

	// items are the order lines, in cart order
	items []*Item

	// totalAmount is the sum of item subtotals at creation time
	totalAmount kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// paymentMethod is how the customer intends to pay
	paymentMethod PaymentMethod

	// notes are free-text instructions from the customer
	notes string

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder places a new order in Pending status and computes its total from
// the items.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - details: Validated delivery details
//   - items: Order lines (at least one)
//   - paymentMethod: Declared payment method, may be PaymentNotInformed
//   - notes: Free-text notes, may be empty
//   - now: Creation timestamp
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	details, _ := order.NewDeliveryDetails("Ana", "11999990000", "Rua das Flores, 10")
//	items, _ := order.ItemsFromCart(c)
//	o, err := order.NewOrder(kernel.NewUUID(), details, items, order.PaymentPix, "", time.Now())
func NewOrder(id kernel.UUID, details DeliveryDetails, items []*Item, paymentMethod PaymentMethod, notes string, now time.Time) (*Order, error) {
	o := &Order{
		details:   details,
		status:    Pending,
		notes:     strings.TrimSpace(notes),
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	totalAmount, err := kernel.NewMoney(total.Decimal())
	if err != nil {
		return nil, err
	}
	o.totalAmount = totalAmount

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// The stored total is kept as-is; it is not recomputed from the items.
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Validation error if the stored data is inconsistent
func RestoreOrder(
	id kernel.UUID,
	details DeliveryDetails,
	items []*Item,
	totalAmount kernel.Money,
	status Status,
	paymentMethod PaymentMethod,
	notes string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		details:     details,
		totalAmount: totalAmount,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.restoreItems(items),
		o.setStatus(status),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder
// or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Details returns the customer and delivery details.
func (o *Order) Details() DeliveryDetails {
	return o.details
}

// Items returns a copy of the order lines.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the total fixed at creation time.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the declared payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Notes returns the customer notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed status.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to target if the state machine allows it.
// On failure the status is left unchanged.
//
// Example:
//
//	if err := o.ChangeStatus(order.Preparing, time.Now()); err != nil {
//	    // Order was not Confirmed
//	}
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = now.UTC()
	return nil
}

// Confirm accepts a pending order.
func (o *Order) Confirm(now time.Time) error {
	return o.ChangeStatus(Confirmed, now)
}

// StartPreparing moves a confirmed order into preparation.
func (o *Order) StartPreparing(now time.Time) error {
	return o.ChangeStatus(Preparing, now)
}

// Deliver marks an order being prepared as delivered.
func (o *Order) Deliver(now time.Time) error {
	return o.ChangeStatus(Delivered, now)
}

// Cancel rejects a pending or confirmed order.
func (o *Order) Cancel(now time.Time) error {
	return o.ChangeStatus(Cancelled, now)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	return o.restoreItems(items)
}

// restoreItems accepts an empty list: an order read back from storage may
// have lost lines whose product rows were removed by hand.
func (o *Order) restoreItems(items []*Item) error {
	o.items = make([]*Item, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		o.items = append(o.items, item)
	}
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
