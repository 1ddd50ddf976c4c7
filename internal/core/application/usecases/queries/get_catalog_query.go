// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for one screen of the storefront or
// the admin dashboard.
package queries

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery lists products, optionally restricted to one category.
//
// Example:
//
//	query, err := NewGetCatalogQuery("doces")
//	products, err := handler.Handle(ctx, query)
type GetCatalogQuery struct {
	category catalog.Category
	guard    guard.ConstructorGuard
}

// NewGetCatalogQuery accepts a category wire name. An empty string or
// "todos" lists every product.
func NewGetCatalogQuery(category string) (GetCatalogQuery, error) {
	q := GetCatalogQuery{guard: guard.NewConstructorGuard()}

	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, catalog.AllCategoriesFilter) {
		return q, nil
	}

	c, err := catalog.ParseCategory(category)
	if err != nil {
		return GetCatalogQuery{}, err
	}
	q.category = c
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// Category returns the filter; UnknownCategory means no filter.
func (q GetCatalogQuery) Category() catalog.Category {
	return q.category
}

// GetCatalogQueryResponse is one product card.
type GetCatalogQueryResponse struct {
	ID          int64
	Name        string
	Description string
	Price       kernel.Money
	Images      []string
	Category    string
}
