package pricing_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/pricing"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetItem(ctx context.Context, id kernel.UUID) (ports.CatalogItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.CatalogItem), args.Error(1)
}

func TestValidator_Quote(t *testing.T) {
	pizza := ports.CatalogItem{ID: kernel.NewUUID(), Name: "Pizza", Price: kernel.MustMoney("10.00"), Available: true}
	soup := ports.CatalogItem{ID: kernel.NewUUID(), Name: "Soup", Price: kernel.MustMoney("5.00"), Available: true}

	t.Run("should total from catalog prices", func(t *testing.T) {
		catalog := new(MockCatalog)
		catalog.On("GetItem", mock.Anything, pizza.ID).Return(pizza, nil)
		catalog.On("GetItem", mock.Anything, soup.ID).Return(soup, nil)
		v, err := pricing.NewValidator(catalog)
		require.NoError(t, err)

		q, err := v.Quote(t.Context(), []pricing.Line{
			{MenuItemID: pizza.ID, Quantity: 2},
			{MenuItemID: soup.ID, Quantity: 1},
		})

		require.NoError(t, err)
		assert.Equal(t, "25.00", q.Total.String())
		require.Len(t, q.Items, 2)
		assert.Equal(t, "Pizza", q.Items[0].Name())
		assert.Equal(t, "10.00", q.Items[0].UnitPrice().String())
		catalog.AssertExpectations(t)
	})

	t.Run("should reject empty list", func(t *testing.T) {
		v, _ := pricing.NewValidator(new(MockCatalog))

		_, err := v.Quote(t.Context(), nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero quantity before catalog lookup", func(t *testing.T) {
		catalog := new(MockCatalog)
		v, _ := pricing.NewValidator(catalog)

		_, err := v.Quote(t.Context(), []pricing.Line{{MenuItemID: pizza.ID, Quantity: 0}})

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		catalog.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything)
	})

	t.Run("should report unknown item as not found", func(t *testing.T) {
		unknown := kernel.NewUUID()
		catalog := new(MockCatalog)
		catalog.On("GetItem", mock.Anything, unknown).
			Return(ports.CatalogItem{}, errs.NewObjectNotFoundError("menuItem", unknown))
		v, _ := pricing.NewValidator(catalog)

		_, err := v.Quote(t.Context(), []pricing.Line{{MenuItemID: unknown, Quantity: 1}})

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject unavailable item", func(t *testing.T) {
		offMenu := pizza
		offMenu.ID = kernel.NewUUID()
		offMenu.Available = false
		catalog := new(MockCatalog)
		catalog.On("GetItem", mock.Anything, offMenu.ID).Return(offMenu, nil)
		v, _ := pricing.NewValidator(catalog)

		_, err := v.Quote(t.Context(), []pricing.Line{{MenuItemID: offMenu.ID, Quantity: 1}})

		assert.ErrorIs(t, err, pricing.ErrItemUnavailable)
	})

	t.Run("should require catalog", func(t *testing.T) {
		_, err := pricing.NewValidator(nil)
		assert.Error(t, err)
	})
}
