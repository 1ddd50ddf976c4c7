package order

import (
	"errors"
	"fmt"
	"strings"

	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// MaxItemQuantity is the largest number of units a single line may carry.
const MaxItemQuantity = 999

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line. It snapshots the product name and unit price at
// the moment the order was placed, so later catalog edits do not change it.
// Items are never mutated after creation.
type Item struct {
	id          kernel.UUID
	productID   *int64
	productName string
	unitPrice   kernel.Money
	quantity    int
	subtotal    kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line and computes its subtotal.
//
// Parameters:
//   - id: unique line identifier
//   - productID: the catalog product, or nil if it no longer exists
//   - productName: name at time of order (must not be blank)
//   - unitPrice: price at time of order
//   - quantity: number of units (1..MaxItemQuantity)
//
// The subtotal must fit in Money, otherwise a ValueIsOutOfRangeError is returned.
func NewItem(id kernel.UUID, productID *int64, productName string, unitPrice kernel.Money, quantity int) (*Item, error) {
	item := &Item{
		productID: productID,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(unitPrice.Mul(quantity).Decimal())
	if err != nil {
		return nil, err
	}
	item.subtotal = subtotal

	return item, nil
}

// RestoreItem rebuilds a line from storage, keeping the stored subtotal.
func RestoreItem(id kernel.UUID, productID *int64, productName string, unitPrice kernel.Money, quantity int, subtotal kernel.Money) (*Item, error) {
	item := &Item{
		productID: productID,
		unitPrice: unitPrice,
		subtotal:  subtotal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// ItemsFromCart converts every cart line into an order line with a fresh id.
func ItemsFromCart(c *cart.Cart) ([]*Item, error) {
	lines := c.Items()
	items := make([]*Item, 0, len(lines))
	for _, line := range lines {
		productID := line.Product().ID()
		item, err := NewItem(kernel.NewUUID(), &productID, line.Product().Name(), line.Product().Price(), line.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Validate ensures the Item was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the catalog product id, or nil when the reference was cleared.
func (i *Item) ProductID() *int64 {
	if i.productID == nil {
		return nil
	}
	id := *i.productID
	return &id
}

// ProductName returns the name snapshot.
func (i *Item) ProductName() string {
	return i.productName
}

// UnitPrice returns the price snapshot.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of units.
func (i *Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity as computed when the order was placed.
func (i *Item) Subtotal() kernel.Money {
	return i.subtotal
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}
