package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

type courierRepository struct {
	uow *UnitOfWork
}

func (r *courierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := checkContext(ctx, "couriers.add"); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *UnitOfWork) error {
		return tx.stageCourier(aggregate, true)
	})
}

func (r *courierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := checkContext(ctx, "couriers.update"); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *UnitOfWork) error {
		return tx.stageCourier(aggregate, false)
	})
}

func (r *courierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := checkContext(ctx, "couriers.get"); err != nil {
		return nil, err
	}
	if staged, ok := r.uow.couriers[id]; ok {
		c := staged.value
		return &c, nil
	}

	s := r.uow.store
	s.mu.RLock()
	c, ok := s.couriers[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	return &c, nil
}

func (r *courierRepository) GetByEmail(ctx context.Context, email string) (*courier.Courier, error) {
	if err := checkContext(ctx, "couriers.get_by_email"); err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, c := range r.snapshot() {
		if c.Email() == email {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("courier", email)
}

func (r *courierRepository) ListAll(ctx context.Context) ([]*courier.Courier, error) {
	if err := checkContext(ctx, "couriers.list_all"); err != nil {
		return nil, err
	}
	couriers := r.snapshot()
	slices.SortFunc(couriers, func(a, b *courier.Courier) int {
		return cmp.Or(cmp.Compare(a.Name(), b.Name()), cmp.Compare(a.ID().String(), b.ID().String()))
	})
	return couriers, nil
}

func (r *courierRepository) ListAvailable(ctx context.Context) ([]*courier.Courier, error) {
	if err := checkContext(ctx, "couriers.list_available"); err != nil {
		return nil, err
	}
	available := slices.DeleteFunc(r.snapshot(), func(c *courier.Courier) bool {
		return !c.IsAvailable()
	})
	slices.SortFunc(available, func(a, b *courier.Courier) int {
		return oldestFirst(a.CreatedAt(), b.CreatedAt(), a.ID(), b.ID())
	})
	return available, nil
}

func (r *courierRepository) snapshot() []*courier.Courier {
	s := r.uow.store
	s.mu.RLock()
	merged := make(map[kernel.UUID]courier.Courier, len(s.couriers))
	for id, c := range s.couriers {
		merged[id] = c
	}
	s.mu.RUnlock()

	for id, staged := range r.uow.couriers {
		merged[id] = staged.value
	}

	result := make([]*courier.Courier, 0, len(merged))
	for _, c := range merged {
		result = append(result, &c)
	}
	return result
}
