package queries

import "context"

type ListCustomerOrdersQueryHandler struct {
	orders OrderReader
}

func NewListCustomerOrdersQueryHandler(orders OrderReader) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{orders: orders}
}

func (h ListCustomerOrdersQueryHandler) Handle(ctx context.Context, query ListCustomerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	orders, err := h.orders.ListByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}
	return newOrderViews(orders), nil
}

type ListAllOrdersQueryHandler struct {
	orders OrderReader
}

func NewListAllOrdersQueryHandler(orders OrderReader) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{orders: orders}
}

func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	orders, err := h.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return newOrderViews(orders), nil
}

type ListOpenOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOpenOrdersQueryHandler(orders OrderReader) ListOpenOrdersQueryHandler {
	return ListOpenOrdersQueryHandler{orders: orders}
}

func (h ListOpenOrdersQueryHandler) Handle(ctx context.Context, query ListOpenOrdersQuery) ([]OpenOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	orders, err := h.orders.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]OpenOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOpenOrderView(o))
	}
	return views, nil
}
