package order_test

import (
	"strings"
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func lineItem(t *testing.T, name string, qty int, price string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), name, qty, kernel.MustMoney(price))
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	payment, err := order.NewPayment("")
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.LineItem{lineItem(t, "Pizza", 2, "10.00"), lineItem(t, "Soup", 1, "5.00")},
		"221B Baker Street",
		payment,
		now,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with derived total", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
		assert.Equal(t, "25.00", o.Total().String())
		assert.Equal(t, order.DefaultPaymentMethod, o.Payment().Method())
		assert.Equal(t, order.PaymentPending, o.Payment().Status())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, 0, o.Version())
		assert.True(t, o.IsOpen())
	})

	t.Run("should require items", func(t *testing.T) {
		payment, _ := order.NewPayment("Card")

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "addr", payment, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should join validation errors", func(t *testing.T) {
		payment, _ := order.NewPayment("Card")

		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, nil, "  ", payment, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "id")
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("should reject oversized address", func(t *testing.T) {
		payment, _ := order.NewPayment("Card")

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{lineItem(t, "Tea", 1, "1.00")}, strings.Repeat("a", 501), payment, now)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value should not validate", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

		var nilOrder *order.Order
		assert.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestNewLineItem(t *testing.T) {
	_, err := order.NewLineItem(kernel.NewUUID(), "Pizza", 0, kernel.MustMoney("1.00"))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = order.NewLineItem(kernel.UUID{}, "Pizza", 1, kernel.MustMoney("1.00"))
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	item, err := order.NewLineItem(kernel.NewUUID(), " Pizza ", 3, kernel.MustMoney("2.50"))
	require.NoError(t, err)
	assert.Equal(t, "Pizza", item.Name())
	assert.Equal(t, "7.50", item.Subtotal().String())
}

func TestRestoreOrder(t *testing.T) {
	items := []order.LineItem{lineItem(t, "Pizza", 2, "10.00")}
	payment, _ := order.RestorePayment("Cash", order.PaymentPending)
	courierID := kernel.NewUUID()

	t.Run("should restore on the way order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items, kernel.MustMoney("20.00"),
			"addr", payment, order.OnTheWay, &courierID, now, now, 4)

		require.NoError(t, err)
		assert.Equal(t, 4, o.Version())
		assert.True(t, o.IsHeldBy(courierID))
		assert.False(t, o.IsOpen())
	})

	t.Run("should reject total mismatch", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items, kernel.MustMoney("19.99"),
			"addr", payment, order.Pending, nil, now, now, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "total")
	})

	t.Run("should reject on the way without courier", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items, kernel.MustMoney("20.00"),
			"addr", payment, order.OnTheWay, nil, now, now, 0)

		assert.Error(t, err)
	})

	t.Run("should accept delivered without courier", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items, kernel.MustMoney("20.00"),
			"addr", payment, order.Delivered, nil, now, now, 2)

		assert.NoError(t, err)
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	t.Run("should dispatch open order", func(t *testing.T) {
		o := newPendingOrder(t)
		courierID := kernel.NewUUID()
		later := now.Add(time.Minute)

		require.NoError(t, o.AssignCourier(courierID, later))

		assert.Equal(t, order.OnTheWay, o.Status())
		assert.True(t, o.IsHeldBy(courierID))
		assert.Equal(t, later, o.UpdatedAt())
		assert.False(t, o.IsOpen())
	})

	t.Run("should dispatch preparing order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.OverrideStatus(order.Preparing, now))

		require.NoError(t, o.AssignCourier(kernel.NewUUID(), now))
		assert.Equal(t, order.OnTheWay, o.Status())
	})

	t.Run("should refuse second courier", func(t *testing.T) {
		o := newPendingOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.AssignCourier(first, now))

		err := o.AssignCourier(kernel.NewUUID(), now)

		assert.ErrorIs(t, err, order.ErrAlreadyClaimed)
		assert.True(t, o.IsHeldBy(first))
	})

	t.Run("should refuse delivered order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.OverrideStatus(order.Delivered, now))

		err := o.AssignCourier(kernel.NewUUID(), now)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("courier returned is a copy", func(t *testing.T) {
		o := newPendingOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.AssignCourier(courierID, now))

		got := o.Courier()
		*got = kernel.NewUUID()

		assert.True(t, o.IsHeldBy(courierID))
	})
}

func TestOrder_Prepare(t *testing.T) {
	o := newPendingOrder(t)
	later := now.Add(time.Minute)

	require.NoError(t, o.Prepare(later))

	assert.Equal(t, order.Preparing, o.Status())
	assert.Equal(t, later.UTC(), o.UpdatedAt())
	assert.Error(t, o.Prepare(later))
}

func TestOrder_Deliver(t *testing.T) {
	o := newPendingOrder(t)
	assert.Error(t, o.Deliver(now))

	courierID := kernel.NewUUID()
	require.NoError(t, o.AssignCourier(courierID, now))
	require.NoError(t, o.Deliver(now))

	assert.Equal(t, order.Delivered, o.Status())
	assert.True(t, o.IsHeldBy(courierID))
	assert.Error(t, o.Deliver(now))
}

func TestOrder_OverrideStatus(t *testing.T) {
	t.Run("should move freely between unheld states", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.OverrideStatus(order.Preparing, now))
		require.NoError(t, o.OverrideStatus(order.Pending, now))
		assert.True(t, o.IsOpen())
		require.NoError(t, o.OverrideStatus(order.Delivered, now))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should not reach on the way without courier", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.OverrideStatus(order.OnTheWay, now)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse held order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AssignCourier(kernel.NewUUID(), now))

		assert.ErrorIs(t, o.OverrideStatus(order.Pending, now), order.ErrCourierAttached)
	})

	t.Run("should refuse delivered order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.OverrideStatus(order.Delivered, now))

		assert.ErrorIs(t, o.OverrideStatus(order.Pending, now), order.ErrOrderIsFinal)
	})

	t.Run("should reject unknown target", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Error(t, o.OverrideStatus(order.Unknown, now))
	})
}

func TestOrder_ContainsItem(t *testing.T) {
	item := lineItem(t, "Pizza", 1, "10.00")
	payment, _ := order.NewPayment("Card")
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, "addr", payment, now)
	require.NoError(t, err)

	assert.True(t, o.ContainsItem(item.MenuItemID()))
	assert.False(t, o.ContainsItem(kernel.NewUUID()))
}

func TestOrder_MarkPersisted(t *testing.T) {
	o := newPendingOrder(t)
	o.MarkPersisted()
	o.MarkPersisted()
	assert.Equal(t, 2, o.Version())
}

func TestNewPayment(t *testing.T) {
	p, err := order.NewPayment(" Card ")
	require.NoError(t, err)
	assert.Equal(t, "Card", p.Method())

	_, err = order.NewPayment(strings.Repeat("x", 51))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = order.RestorePayment("Cash", "Refunded")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
