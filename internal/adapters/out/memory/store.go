// Package memory is an in-process storage driver. It keeps the same contract
// as the Postgres adapter: units of work stage their writes and commit them
// atomically only if every updated aggregate still has the version it was
// loaded with.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

type reviewKey struct {
	customerID kernel.UUID
	orderID    kernel.UUID
	menuItemID kernel.UUID
}

// Store holds committed state. Aggregates are kept as value copies so callers
// never share memory with it.
type Store struct {
	mu       sync.RWMutex
	orders   map[kernel.UUID]order.Order
	couriers map[kernel.UUID]courier.Courier
	reviews  map[reviewKey]review.Review
}

func NewStore() *Store {
	return &Store{
		orders:   make(map[kernel.UUID]order.Order),
		couriers: make(map[kernel.UUID]courier.Courier),
		reviews:  make(map[reviewKey]review.Review),
	}
}

// UnitOfWorkFactory returns a factory for units of work over this store.
func (s *Store) UnitOfWorkFactory() *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: s}
}

// OrderRepository returns a repository outside any unit of work. Each write
// commits on its own.
func (s *Store) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: s.autocommit()}
}

func (s *Store) CourierRepository() ports.CourierRepository {
	return &courierRepository{uow: s.autocommit()}
}

func (s *Store) ReviewRepository() ports.ReviewRepository {
	return &reviewRepository{uow: s.autocommit()}
}

func (s *Store) autocommit() *UnitOfWork {
	return &UnitOfWork{store: s, autocommit: true}
}

func checkContext(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return errs.NewTransientError(operation, err)
	}
	return nil
}

func newestFirst(aCreated, bCreated time.Time, aID, bID kernel.UUID) int {
	if c := bCreated.Compare(aCreated); c != 0 {
		return c
	}
	return cmp.Compare(bID.String(), aID.String())
}

func oldestFirst(aCreated, bCreated time.Time, aID, bID kernel.UUID) int {
	return -newestFirst(aCreated, bCreated, aID, bID)
}

func sortOrders(orders []*order.Order, by func(aCreated, bCreated time.Time, aID, bID kernel.UUID) int) {
	slices.SortFunc(orders, func(a, b *order.Order) int {
		return by(a.CreatedAt(), b.CreatedAt(), a.ID(), b.ID())
	})
}

func sortOrdersNewestFirst(orders []*order.Order) {
	sortOrders(orders, newestFirst)
}
