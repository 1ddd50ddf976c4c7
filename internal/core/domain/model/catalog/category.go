package catalog

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// Category classifies products on the storefront.
type Category int

const (
	// UnknownCategory is the zero value and is never valid.
	UnknownCategory Category = iota

	// Breads covers loaves and sweet breads ("paes").
	Breads

	// Savories covers savory snacks such as empadas ("salgados").
	Savories

	// Sweets covers rosca rings and cakes ("doces").
	Sweets
)

// AllCategoriesFilter is the storefront filter value that selects every category.
const AllCategoriesFilter = "todos"

func getCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory has no wire name
	return map[Category]string{
		Breads:   "paes",
		Savories: "salgados",
		Sweets:   "doces",
	}
}

// ParseCategory converts a wire name ("paes", "salgados", "doces") to a Category.
// Matching ignores case and surrounding spaces.
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for c, name := range getCategoryStrings() {
		if name == normalized {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%q is not a known category", s))
}

// Validate rejects UnknownCategory and out-of-range values.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the wire name, or "unknown".
func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}
