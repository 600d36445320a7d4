package memory

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := checkContext(ctx, "orders.add"); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *UnitOfWork) error {
		return tx.stageOrder(aggregate, true)
	})
}

func (r *orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := checkContext(ctx, "orders.update"); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *UnitOfWork) error {
		return tx.stageOrder(aggregate, false)
	})
}

func (r *orderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := checkContext(ctx, "orders.get"); err != nil {
		return nil, err
	}
	if staged, ok := r.uow.orders[id]; ok {
		o := staged.value
		return &o, nil
	}

	s := r.uow.store
	s.mu.RLock()
	o, ok := s.orders[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return &o, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	return r.list(ctx, "orders.list_by_customer", func(o *order.Order) bool {
		return o.BelongsTo(customerID)
	}, sortOrdersNewestFirst)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, "orders.list_all", func(*order.Order) bool { return true }, sortOrdersNewestFirst)
}

func (r *orderRepository) ListOpen(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, "orders.list_open", (*order.Order).IsOpen, func(orders []*order.Order) {
		sortOrders(orders, oldestFirst)
	})
}

func (r *orderRepository) list(
	ctx context.Context,
	operation string,
	keep func(*order.Order) bool,
	sortFn func([]*order.Order),
) ([]*order.Order, error) {
	if err := checkContext(ctx, operation); err != nil {
		return nil, err
	}
	result := make([]*order.Order, 0)
	for _, o := range r.snapshot() {
		if keep(o) {
			result = append(result, o)
		}
	}
	sortFn(result)
	return result, nil
}

// snapshot merges committed orders with this unit of work's staged writes.
func (r *orderRepository) snapshot() []*order.Order {
	s := r.uow.store
	s.mu.RLock()
	merged := make(map[kernel.UUID]order.Order, len(s.orders))
	for id, o := range s.orders {
		merged[id] = o
	}
	s.mu.RUnlock()

	for id, staged := range r.uow.orders {
		merged[id] = staged.value
	}

	result := make([]*order.Order, 0, len(merged))
	for _, o := range merged {
		result = append(result, &o)
	}
	return result
}
