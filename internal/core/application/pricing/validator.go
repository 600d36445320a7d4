// Package pricing turns requested menu items into priced order lines using
// catalog prices only.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// ErrItemUnavailable is returned for catalog items that are switched off.
var ErrItemUnavailable = errs.NewValueIsInvalidErrorWithCause("menuItem", errors.New("item is not available"))

// Line is a requested item. Prices come from the catalog only.
type Line struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// Quote is the priced result.
type Quote struct {
	Items []order.LineItem
	Total kernel.Money
}

type Validator struct {
	catalog ports.Catalog
}

func NewValidator(catalog ports.Catalog) (*Validator, error) {
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}
	return &Validator{catalog: catalog}, nil
}

// Quote resolves every line through the catalog. Unknown items fail with
// errs.ObjectNotFoundError (menuItem).
func (v *Validator) Quote(ctx context.Context, lines []Line) (Quote, error) {
	if len(lines) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("items")
	}

	items := make([]order.LineItem, 0, len(lines))
	total := kernel.ZeroMoney()
	for i, line := range lines {
		if line.Quantity < 1 {
			return Quote{}, errs.NewValueIsOutOfRangeErrorWithCause("quantity", line.Quantity, 1, "+inf",
				fmt.Errorf("line %d", i))
		}

		catalogItem, err := v.catalog.GetItem(ctx, line.MenuItemID)
		if err != nil {
			return Quote{}, err
		}
		if !catalogItem.Available {
			return Quote{}, ErrItemUnavailable
		}

		item, err := order.NewLineItem(catalogItem.ID, catalogItem.Name, line.Quantity, catalogItem.Price)
		if err != nil {
			return Quote{}, err
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	return Quote{Items: items, Total: total}, nil
}
