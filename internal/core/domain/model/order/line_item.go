package order

import (
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// LineItem is one catalog item in an order, priced when the order was placed.
type LineItem struct {
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money
}

// NewLineItem validates a priced line. Quantity must be at least one.
func NewLineItem(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return LineItem{}, errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "+inf")
	}
	return LineItem{menuItemID: menuItemID, name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l LineItem) MenuItemID() kernel.UUID {
	return l.menuItemID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal is unit price times quantity.
func (l LineItem) Subtotal() kernel.Money {
	return l.unitPrice.Multiply(l.quantity)
}
