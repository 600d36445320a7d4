package queries

import (
	"context"

	"foodorder/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns AccessDenied when the caller neither owns the order nor is staff.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	actor := query.Actor()
	if !o.BelongsTo(actor.UserID) && !actor.Role.IsElevated() {
		return OrderView{}, errs.NewAccessDeniedError("order belongs to another customer")
	}
	return NewOrderView(o), nil
}
