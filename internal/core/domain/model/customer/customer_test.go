package customer_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	first := time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)
	last := first.Add(48 * time.Hour)

	t.Run("should build a summary keyed by phone", func(t *testing.T) {
		c, err := customer.NewCustomer(" Ana ", " 11999990000 ", "Rua A", 3, last, first)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Ana", c.Name())
		assert.Equal(t, "11999990000", c.Phone())
		assert.Equal(t, 3, c.TotalOrders())
		assert.Equal(t, last, c.LastOrderAt())
		assert.Equal(t, first, c.CreatedAt())
		assert.True(t, c.ID().IsEqual(customer.IDForPhone("11999990000")))
	})

	t.Run("should reject inconsistent summaries", func(t *testing.T) {
		_, err := customer.NewCustomer("Ana", "", "", 0, first, last)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "total orders is invalid")
		assert.Contains(t, err.Error(), "last order time is invalid")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, (&customer.Customer{}).Validate())
	})
}
