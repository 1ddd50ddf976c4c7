package kernel_test

import (
	"testing"

	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a new UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should create UUID from valid string", func(t *testing.T) {
		id, err := kernel.UUIDFromString(validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should accept UUID with urn prefix", func(t *testing.T) {
		id, err := kernel.UUIDFromString("urn:uuid:" + validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
	})

	t.Run("should return error for invalid UUID format", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716", "zzze8400-e29b-41d4-a716-446655440000"} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "expected error for input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should parse the nil UUID but fail validation", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.NoError(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUIDFromName(t *testing.T) {
	t.Run("should be deterministic for the same name", func(t *testing.T) {
		a := kernel.UUIDFromName("11999990000")
		b := kernel.UUIDFromName("11999990000")

		assert.True(t, a.IsEqual(b))
		assert.NoError(t, a.Validate())
	})

	t.Run("should differ for different names", func(t *testing.T) {
		a := kernel.UUIDFromName("11999990000")
		b := kernel.UUIDFromName("11999990001")

		assert.False(t, a.IsEqual(b))
	})

	t.Run("should produce a version 5 UUID", func(t *testing.T) {
		id := kernel.UUIDFromName("11999990000")

		assert.Equal(t, uuid.Version(5), id.Value().Version())
	})
}

func TestUUID_Value(t *testing.T) {
	t.Run("should round trip through uuid.UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		back := kernel.UUIDFromGoogle(id.Value())

		assert.True(t, id.IsEqual(back))
	})

	t.Run("modifying the returned value does not affect the original", func(t *testing.T) {
		original := kernel.NewUUID()
		originalString := original.String()

		raw := original.Value()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, originalString, original.String())
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should return error for zero value UUID", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}
