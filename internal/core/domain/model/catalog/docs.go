// Package catalog models the products a customer can buy.
//
// The package includes:
//   - Product: the aggregate root for a purchasable item with a price, images and a category
//   - Category: the fixed product classification (paes, salgados, doces)
//
// Key business rules:
//   - A product always has a positive identifier, a name and a valid category
//   - Prices are non-negative and only change through ChangePrice
package catalog
