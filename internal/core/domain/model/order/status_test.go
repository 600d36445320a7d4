package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, name := range []string{"pending", "preparing", "onTheWay", "delivered"} {
		t.Run("should round trip "+name, func(t *testing.T) {
			s, err := order.ParseStatus(name)

			require.NoError(t, err)
			assert.Equal(t, name, s.String())
			assert.NoError(t, s.Validate())
		})
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("cancelled")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := order.ParseStatus("OnTheWay")

		assert.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	assert.Error(t, order.Unknown.Validate())
	assert.Error(t, order.Status(42).Validate())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_Dispatch(t *testing.T) {
	tests := []struct {
		from    order.Status
		wantErr bool
	}{
		{order.Pending, false},
		{order.Preparing, false},
		{order.OnTheWay, true},
		{order.Delivered, true},
		{order.Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			next, err := tt.from.Dispatch()

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.OnTheWay, next)
		})
	}
}

func TestStatus_Prepare(t *testing.T) {
	next, err := order.Pending.Prepare()
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, next)

	for _, from := range []order.Status{order.Preparing, order.OnTheWay, order.Delivered, order.Unknown} {
		_, err := from.Prepare()
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "prepare from %s", from)
	}
}

func TestStatus_Deliver(t *testing.T) {
	next, err := order.OnTheWay.Deliver()
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, next)

	for _, from := range []order.Status{order.Pending, order.Preparing, order.Delivered} {
		_, err := from.Deliver()
		assert.Error(t, err, "deliver from %s", from)
	}
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	assert.Error(t, order.OnTheWay.ValidateCanHaveCourier(false))
	assert.NoError(t, order.OnTheWay.ValidateCanHaveCourier(true))
	assert.Error(t, order.Pending.ValidateCanHaveCourier(true))
	assert.Error(t, order.Preparing.ValidateCanHaveCourier(true))
	assert.NoError(t, order.Pending.ValidateCanHaveCourier(false))
	assert.NoError(t, order.Delivered.ValidateCanHaveCourier(true))
	assert.NoError(t, order.Delivered.ValidateCanHaveCourier(false))
}
