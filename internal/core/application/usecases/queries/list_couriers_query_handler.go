package queries

import (
	"context"

	"foodorder/internal/core/domain/model/courier"
)

type ListCouriersQueryHandler struct {
	couriers CourierReader
}

func NewListCouriersQueryHandler(couriers CourierReader) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{couriers: couriers}
}

func (h ListCouriersQueryHandler) Handle(ctx context.Context, query ListCouriersQuery) ([]CourierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		couriers []*courier.Courier
		err      error
	)
	if query.AvailableOnly() {
		couriers, err = h.couriers.ListAvailable(ctx)
	} else {
		couriers, err = h.couriers.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	views := make([]CourierView, 0, len(couriers))
	for _, c := range couriers {
		views = append(views, NewCourierView(c))
	}
	return views, nil
}
