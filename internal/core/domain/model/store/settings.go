package store

import (
	"errors"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

// SettingsID is the primary key of the single settings row.
const SettingsID int64 = 1

// DefaultOpeningHours is shown until the admin sets other hours.
const DefaultOpeningHours = "Terça a Domingo das 14h às 22h"

var ErrSettingsIsNotConstructed = errors.New("Settings must be created via NewSettings constructor")

// Settings is the store-wide singleton: whether the store takes orders,
// the opening hours text and the promotional banner.
type Settings struct {
	isOpen       bool
	openingHours string
	banner       Banner
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// DefaultSettings returns an open store with the default hours and no banner.
func DefaultSettings(now time.Time) *Settings {
	return &Settings{
		isOpen:       true,
		openingHours: DefaultOpeningHours,
		banner:       InactiveBanner(),
		updatedAt:    now.UTC(),
		guard:        guard.NewConstructorGuard(),
	}
}

// NewSettings restores settings from storage. Blank hours fall back to the default.
func NewSettings(isOpen bool, openingHours string, banner Banner, updatedAt time.Time) (*Settings, error) {
	if err := banner.Validate(); err != nil {
		return nil, err
	}
	openingHours = strings.TrimSpace(openingHours)
	if openingHours == "" {
		openingHours = DefaultOpeningHours
	}
	return &Settings{
		isOpen:       isOpen,
		openingHours: openingHours,
		banner:       banner,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (s *Settings) Validate() error {
	if s == nil {
		return ErrSettingsIsNotConstructed
	}
	return s.guard.Validate(ErrSettingsIsNotConstructed)
}

// IsOpen reports whether the store accepts orders.
func (s *Settings) IsOpen() bool {
	return s.isOpen
}

// OpeningHours returns the free-text opening hours.
func (s *Settings) OpeningHours() string {
	return s.openingHours
}

// Banner returns the promotional banner.
func (s *Settings) Banner() Banner {
	return s.banner
}

// UpdatedAt returns the time of the last change.
func (s *Settings) UpdatedAt() time.Time {
	return s.updatedAt
}

// Toggle flips the open flag and returns the new value.
// Toggling twice restores the original state.
func (s *Settings) Toggle(now time.Time) bool {
	s.isOpen = !s.isOpen
	s.updatedAt = now.UTC()
	return s.isOpen
}

// UpdateBanner replaces the banner.
func (s *Settings) UpdateBanner(banner Banner, now time.Time) error {
	if err := banner.Validate(); err != nil {
		return err
	}
	s.banner = banner
	s.updatedAt = now.UTC()
	return nil
}

// DiscountedBannerPrice is a convenience for Banner().DiscountedPrice().
func (s *Settings) DiscountedBannerPrice() kernel.Money {
	return s.banner.DiscountedPrice()
}
