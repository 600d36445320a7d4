package courier_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Bob", "Bob@Example.com", "89001234567", "$2a$hash", now)
	require.NoError(t, err)
	return c
}

func TestNewCourier(t *testing.T) {
	t.Run("should create available courier", func(t *testing.T) {
		c := newCourier(t)

		require.NoError(t, c.Validate())
		assert.Equal(t, "Bob", c.Name())
		assert.Equal(t, "bob@example.com", c.Email())
		assert.Equal(t, "89001234567", c.Phone())
		assert.Equal(t, courier.Available, c.Status())
		assert.True(t, c.IsAvailable())
		assert.Nil(t, c.CurrentOrder())
		assert.Equal(t, 0, c.Version())
	})

	tests := []struct {
		name    string
		cname   string
		email   string
		phone   string
		hash    string
		wantErr error
	}{
		{"missing name", " ", "a@b.co", "89001234567", "h", errs.ErrValueIsRequired},
		{"missing email", "Bob", "", "89001234567", "h", errs.ErrValueIsRequired},
		{"bad email", "Bob", "not-an-email", "89001234567", "h", errs.ErrValueIsInvalid},
		{"display name email", "Bob", "Bob <bob@example.com>", "89001234567", "h", errs.ErrValueIsInvalid},
		{"short phone", "Bob", "a@b.co", "8900123456", "h", errs.ErrValueIsInvalid},
		{"letters in phone", "Bob", "a@b.co", "8900123456x", "h", errs.ErrValueIsInvalid},
		{"missing hash", "Bob", "a@b.co", "89001234567", "", errs.ErrValueIsRequired},
	}
	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			c, err := courier.NewCourier(kernel.NewUUID(), tt.cname, tt.email, tt.phone, tt.hash, now)

			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("zero value should not validate", func(t *testing.T) {
		var c courier.Courier
		assert.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestRestoreCourier(t *testing.T) {
	orderID := kernel.NewUUID()

	c, err := courier.RestoreCourier(kernel.NewUUID(), "Bob", "bob@example.com", "89001234567", "h",
		courier.Busy, &orderID, now, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Version())
	assert.True(t, c.CurrentOrder().IsEqual(orderID))

	_, err = courier.RestoreCourier(kernel.NewUUID(), "Bob", "bob@example.com", "89001234567", "h",
		courier.Busy, nil, now, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = courier.RestoreCourier(kernel.NewUUID(), "Bob", "bob@example.com", "89001234567", "h",
		courier.Available, &orderID, now, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCourier_ClaimAndRelease(t *testing.T) {
	t.Run("should claim when available", func(t *testing.T) {
		c := newCourier(t)
		orderID := kernel.NewUUID()

		require.NoError(t, c.Claim(orderID))

		assert.Equal(t, courier.Busy, c.Status())
		assert.True(t, c.CurrentOrder().IsEqual(orderID))
	})

	t.Run("should refuse second claim", func(t *testing.T) {
		c := newCourier(t)
		first := kernel.NewUUID()
		require.NoError(t, c.Claim(first))

		err := c.Claim(kernel.NewUUID())

		assert.ErrorIs(t, err, courier.ErrAlreadyActive)
		assert.True(t, c.CurrentOrder().IsEqual(first))
	})

	t.Run("should release own order", func(t *testing.T) {
		c := newCourier(t)
		orderID := kernel.NewUUID()
		require.NoError(t, c.Claim(orderID))

		require.NoError(t, c.Release(orderID))

		assert.True(t, c.IsAvailable())
		assert.Nil(t, c.CurrentOrder())
	})

	t.Run("should refuse releasing someone else's order", func(t *testing.T) {
		c := newCourier(t)
		require.NoError(t, c.Claim(kernel.NewUUID()))

		assert.ErrorIs(t, c.Release(kernel.NewUUID()), courier.ErrNotOwner)
		assert.False(t, c.IsAvailable())
	})

	t.Run("should refuse release when available", func(t *testing.T) {
		c := newCourier(t)

		assert.ErrorIs(t, c.Release(kernel.NewUUID()), courier.ErrNotOwner)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "available", courier.Available.String())
	assert.Equal(t, "busy", courier.Busy.String())
	assert.Equal(t, "unknown", courier.Unknown.String())
	assert.Error(t, courier.Unknown.Validate())
}

func TestParseStatus(t *testing.T) {
	s, err := courier.ParseStatus("busy")
	require.NoError(t, err)
	assert.Equal(t, courier.Busy, s)

	_, err = courier.ParseStatus("sleeping")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
