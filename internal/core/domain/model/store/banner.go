package store

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

const (
	MinDiscount = 0
	MaxDiscount = 100
)

var ErrBannerIsNotConstructed = errors.New("Banner must be created via NewBanner constructor")

// Banner is the promotional strip shown on the landing page.
type Banner struct {
	active   bool
	text     string
	price    kernel.Money
	discount int

	guard guard.ConstructorGuard
}

// NewBanner validates a banner. The text may be empty even when the banner
// is active; the discount is a whole percentage between 0 and 100.
func NewBanner(active bool, text string, price kernel.Money, discount int) (Banner, error) {
	text = strings.TrimSpace(text)

	if discount < MinDiscount || discount > MaxDiscount {
		return Banner{}, errs.NewValueIsOutOfRangeError("banner discount", discount, MinDiscount, MaxDiscount)
	}

	return Banner{
		active:   active,
		text:     text,
		price:    price,
		discount: discount,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// InactiveBanner is the banner of a fresh store.
func InactiveBanner() Banner {
	return Banner{price: kernel.ZeroMoney(), guard: guard.NewConstructorGuard()}
}

func (b Banner) Validate() error {
	return b.guard.Validate(ErrBannerIsNotConstructed)
}

func (b Banner) Active() bool        { return b.active }
func (b Banner) Text() string        { return b.text }
func (b Banner) Price() kernel.Money { return b.price }
func (b Banner) Discount() int       { return b.discount }

// DiscountedPrice is price - price*discount/100.
func (b Banner) DiscountedPrice() kernel.Money {
	return b.price.Discount(b.discount)
}
