package guard_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("entity not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInStruct(t *testing.T) {
	type payment struct {
		method string
		guard  guard.ConstructorGuard
	}
	errPaymentNotConstructed := errors.New("payment must be created via newPayment")

	newPayment := func(method string) payment {
		return payment{method: method, guard: guard.NewConstructorGuard()}
	}

	require.NoError(t, newPayment("Cash").guard.Validate(errPaymentNotConstructed))

	var zero payment
	require.ErrorIs(t, zero.guard.Validate(errPaymentNotConstructed), errPaymentNotConstructed)
}
