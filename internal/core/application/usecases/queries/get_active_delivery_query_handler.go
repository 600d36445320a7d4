package queries

import "context"

type GetActiveDeliveryQueryHandler struct {
	couriers CourierReader
	orders   OrderReader
}

func NewGetActiveDeliveryQueryHandler(couriers CourierReader, orders OrderReader) GetActiveDeliveryQueryHandler {
	return GetActiveDeliveryQueryHandler{couriers: couriers, orders: orders}
}

func (h GetActiveDeliveryQueryHandler) Handle(ctx context.Context, query GetActiveDeliveryQuery) (ActiveDeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return ActiveDeliveryResponse{}, err
	}

	c, err := h.couriers.Get(ctx, query.CourierID())
	if err != nil {
		return ActiveDeliveryResponse{}, err
	}
	current := c.CurrentOrder()
	if current == nil {
		return ActiveDeliveryResponse{Active: false}, nil
	}

	o, err := h.orders.Get(ctx, *current)
	if err != nil {
		return ActiveDeliveryResponse{}, err
	}
	view := NewOrderView(o)
	return ActiveDeliveryResponse{Active: true, Order: &view}, nil
}
