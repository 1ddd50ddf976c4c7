package catalog

import (
	"errors"
	"fmt"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created via NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a purchasable catalog item.
//
// Product follows these invariants:
//   - id is positive and stable for the lifetime of the catalog
//   - name is not blank
//   - price is a valid non-negative Money
//   - category is one of paes, salgados or doces
//
// Images keep their order; the first one is used as the thumbnail.
type Product struct {
	id          int64
	name        string
	description string
	price       kernel.Money
	images      []string
	category    Category

	guard guard.ConstructorGuard
}

// NewProduct validates its arguments and builds a Product. It is used both
// for seeding the catalog and for restoring rows from storage, since a
// product carries no state beyond its columns.
//
// Parameters:
//   - id: catalog identifier (must be > 0)
//   - name: display name (must not be blank)
//   - description: free text, may be empty
//   - price: unit price
//   - images: ordered image URLs, may be empty
//   - category: product category
//
// Example:
//
//	price, _ := kernel.MoneyFromString("8.00")
//	p, err := catalog.NewProduct(1, "Empada de Frango", "Massa podre recheada", price, nil, catalog.Savories)
func NewProduct(id int64, name, description string, price kernel.Money, images []string, category Category) (*Product, error) {
	p := &Product{
		description: strings.TrimSpace(description),
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setImages(images),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was built through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id == other.id
}

// ID returns the catalog identifier.
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-text description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Images returns a copy of the image URLs in display order.
func (p *Product) Images() []string {
	images := make([]string, len(p.images))
	copy(images, p.images)
	return images
}

// Category returns the product category.
func (p *Product) Category() Category {
	return p.category
}

// ChangePrice replaces the unit price. This is the only mutation a product
// supports; orders already placed keep their own price snapshot.
func (p *Product) ChangePrice(price kernel.Money) {
	p.price = price
}

func (p *Product) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setImages(images []string) error {
	p.images = make([]string, 0, len(images))
	for i, img := range images {
		img = strings.TrimSpace(img)
		if img == "" {
			return errs.NewValueIsInvalidErrorWithCause("product image is invalid", fmt.Errorf("image %d is blank", i))
		}
		p.images = append(p.images, img)
	}
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
