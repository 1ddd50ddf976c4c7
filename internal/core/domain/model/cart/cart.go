// Package cart holds a shopping cart for the lifetime of one checkout.
//
// Lines are keyed by product id and keep insertion order. Quantities never
// drop below one; removing a line is an explicit operation.
package cart

import (
	"fmt"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// Item is one cart line: a product and how many of it.
type Item struct {
	product  *catalog.Product
	quantity int
}

// Product returns the product on this line.
func (i Item) Product() *catalog.Product {
	return i.product
}

// Quantity returns the line quantity, always >= 1.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal is price times quantity.
func (i Item) Subtotal() kernel.Money {
	return i.product.Price().Mul(i.quantity)
}

// Cart is an ordered list of lines. The zero value is an empty, usable cart.
type Cart struct {
	items []*Item
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of product in the cart, incrementing the existing line
// if the product is already there.
func (c *Cart) Add(product *catalog.Product) error {
	return c.AddQuantity(product, 1)
}

// AddQuantity puts quantity units of product in the cart.
func (c *Cart) AddQuantity(product *catalog.Product, quantity int) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	if line := c.find(product.ID()); line != nil {
		line.quantity += quantity
		return nil
	}
	c.items = append(c.items, &Item{product: product, quantity: quantity})
	return nil
}

// UpdateQuantity adds delta (which may be negative) to a line. The result is
// clamped to a minimum of one.
func (c *Cart) UpdateQuantity(productID int64, delta int) error {
	line := c.find(productID)
	if line == nil {
		return errs.NewObjectNotFoundErrorWithCause("productId", productID, fmt.Errorf("product %d is not in the cart", productID))
	}
	line.quantity = max(1, line.quantity+delta)
	return nil
}

// Remove drops a line. Removing a product that is not in the cart is a no-op.
func (c *Cart) Remove(productID int64) {
	for i, line := range c.items {
		if line.product.ID() == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a snapshot of the lines in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, 0, len(c.items))
	for _, line := range c.items {
		items = append(items, *line)
	}
	return items
}

// Total sums every line subtotal.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range c.items {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Count sums every line quantity.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.items {
		count += line.quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) find(productID int64) *Item {
	for _, line := range c.items {
		if line.product.ID() == productID {
			return line
		}
	}
	return nil
}
