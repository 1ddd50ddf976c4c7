package store_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/store"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 2, 14, 0, 0, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestDefaultSettings(t *testing.T) {
	s := store.DefaultSettings(now)

	require.NoError(t, s.Validate())
	assert.True(t, s.IsOpen())
	assert.Equal(t, store.DefaultOpeningHours, s.OpeningHours())
	assert.False(t, s.Banner().Active())
	assert.True(t, s.DiscountedBannerPrice().IsZero())
}

func TestSettings_Toggle(t *testing.T) {
	t.Run("toggling twice should return to the original state", func(t *testing.T) {
		for _, initial := range []bool{true, false} {
			s, err := store.NewSettings(initial, "", store.InactiveBanner(), now)
			require.NoError(t, err)

			assert.Equal(t, !initial, s.Toggle(now.Add(time.Minute)))
			assert.Equal(t, initial, s.Toggle(now.Add(2*time.Minute)))
			assert.Equal(t, now.Add(2*time.Minute), s.UpdatedAt())
		}
	})
}

func TestNewSettings(t *testing.T) {
	t.Run("blank hours should fall back to the default", func(t *testing.T) {
		s, err := store.NewSettings(true, "  ", store.InactiveBanner(), now)

		require.NoError(t, err)
		assert.Equal(t, store.DefaultOpeningHours, s.OpeningHours())
	})

	t.Run("should reject a banner that was not constructed", func(t *testing.T) {
		_, err := store.NewSettings(true, "", store.Banner{}, now)

		require.ErrorIs(t, err, store.ErrBannerIsNotConstructed)
	})
}

func TestSettings_UpdateBanner(t *testing.T) {
	t.Run("should replace the banner", func(t *testing.T) {
		s := store.DefaultSettings(now)
		banner, err := store.NewBanner(true, "Rosca de Goiabada em promoção", money(t, "20.00"), 10)
		require.NoError(t, err)

		require.NoError(t, s.UpdateBanner(banner, now.Add(time.Hour)))

		assert.True(t, s.Banner().Active())
		assert.Equal(t, "18.00", s.DiscountedBannerPrice().String())
		assert.Equal(t, now.Add(time.Hour), s.UpdatedAt())
	})

	t.Run("should keep the old banner on error", func(t *testing.T) {
		s := store.DefaultSettings(now)

		err := s.UpdateBanner(store.Banner{}, now.Add(time.Hour))

		require.Error(t, err)
		assert.False(t, s.Banner().Active())
		assert.Equal(t, now, s.UpdatedAt())
	})
}

func TestNewBanner(t *testing.T) {
	t.Run("discounted price should be price minus the discount percentage", func(t *testing.T) {
		testCases := []struct {
			price    string
			discount int
			expected string
		}{
			{"20.00", 0, "20.00"},
			{"20.00", 25, "15.00"},
			{"24.00", 50, "12.00"},
			{"18.00", 100, "0.00"},
		}

		for _, tc := range testCases {
			b, err := store.NewBanner(true, "Promo", money(t, tc.price), tc.discount)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, b.DiscountedPrice().String())
		}
	})

	t.Run("should reject discounts outside 0..100", func(t *testing.T) {
		for _, discount := range []int{-1, 101} {
			_, err := store.NewBanner(false, "", money(t, "10.00"), discount)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("an active banner may have no text", func(t *testing.T) {
		b, err := store.NewBanner(true, " ", money(t, "10.00"), 0)

		require.NoError(t, err)
		assert.True(t, b.Active())
		assert.Empty(t, b.Text())
	})

	t.Run("an inactive banner may be blank", func(t *testing.T) {
		b, err := store.NewBanner(false, "", kernel.ZeroMoney(), 0)

		require.NoError(t, err)
		assert.False(t, b.Active())
	})
}
