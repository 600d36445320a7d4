package memory

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

var (
	ErrNoActiveTransaction = errors.New("memory: no active transaction")
	errDuplicateEmail      = errors.New("a courier with this email already exists")
	errOrderExists         = errors.New("an order with this id already exists")
)

type UnitOfWorkFactory struct {
	store *Store
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

type stagedOrder struct {
	value    order.Order
	expected int
	isNew    bool
}

type stagedCourier struct {
	value    courier.Courier
	expected int
	isNew    bool
}

type versioned interface {
	MarkPersisted()
}

// UnitOfWork stages writes until Commit. Reads see staged writes first.
type UnitOfWork struct {
	store      *Store
	active     bool
	autocommit bool

	orders   map[kernel.UUID]stagedOrder
	couriers map[kernel.UUID]stagedCourier
	reviews  map[reviewKey]review.Review
	tracked  []versioned
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return nil
	}
	u.active = true
	u.reset()
	return nil
}

func (u *UnitOfWork) reset() {
	u.orders = make(map[kernel.UUID]stagedOrder)
	u.couriers = make(map[kernel.UUID]stagedCourier)
	u.reviews = make(map[reviewKey]review.Review)
	u.tracked = nil
}

// Commit applies every staged write or none of them.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	defer func() {
		u.active = false
		u.reset()
	}()

	if err := u.apply(); err != nil {
		return err
	}
	for _, agg := range u.tracked {
		agg.MarkPersisted()
	}
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	u.active = false
	u.reset()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

func (u *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &courierRepository{uow: u}
}

func (u *UnitOfWork) ReviewRepository() ports.ReviewRepository {
	return &reviewRepository{uow: u}
}

// write runs stage inside the unit of work. In autocommit mode every write gets
// its own short unit of work so the repository is safe for concurrent use.
func (u *UnitOfWork) write(ctx context.Context, stage func(tx *UnitOfWork) error) error {
	if !u.autocommit {
		if !u.active {
			return ErrNoActiveTransaction
		}
		return stage(u)
	}

	tx := &UnitOfWork{store: u.store}
	if err := tx.Begin(ctx); err != nil {
		return err
	}
	if err := stage(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// stageOrder records an insert or a version-checked update. The version
// check runs eagerly here and again at commit.
func (u *UnitOfWork) stageOrder(o *order.Order, insert bool) error {
	value := *o
	entry := stagedOrder{expected: o.Version(), isNew: insert}
	if prev, ok := u.orders[o.ID()]; ok {
		entry.expected, entry.isNew = prev.expected, prev.isNew
	} else if !insert {
		u.store.mu.RLock()
		current, exists := u.store.orders[o.ID()]
		u.store.mu.RUnlock()
		if !exists {
			return errs.NewObjectNotFoundError("order", o.ID())
		}
		if current.Version() != o.Version() {
			return errs.NewVersionIsInvalidError("order", o.Version())
		}
	}

	if !insert {
		value.MarkPersisted()
		u.tracked = append(u.tracked, o)
	}
	entry.value = value
	u.orders[o.ID()] = entry
	return nil
}

func (u *UnitOfWork) stageCourier(c *courier.Courier, insert bool) error {
	value := *c
	entry := stagedCourier{expected: c.Version(), isNew: insert}
	if prev, ok := u.couriers[c.ID()]; ok {
		entry.expected, entry.isNew = prev.expected, prev.isNew
	} else if !insert {
		u.store.mu.RLock()
		current, exists := u.store.couriers[c.ID()]
		u.store.mu.RUnlock()
		if !exists {
			return errs.NewObjectNotFoundError("courier", c.ID())
		}
		if current.Version() != c.Version() {
			return errs.NewVersionIsInvalidError("courier", c.Version())
		}
	}

	if !insert {
		value.MarkPersisted()
		u.tracked = append(u.tracked, c)
	}
	entry.value = value
	u.couriers[c.ID()] = entry
	return nil
}

// apply checks every staged write against committed state and, only if all of
// them hold, writes them under a single lock.
func (u *UnitOfWork) apply() error {
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, staged := range u.orders {
		current, exists := s.orders[id]
		switch {
		case staged.isNew && exists:
			return errs.NewValueIsInvalidErrorWithCause("id", errOrderExists)
		case !staged.isNew && !exists:
			return errs.NewObjectNotFoundError("order", id)
		case !staged.isNew && current.Version() != staged.expected:
			return errs.NewVersionIsInvalidError("order", staged.expected)
		}
	}

	for id, staged := range u.couriers {
		current, exists := s.couriers[id]
		switch {
		case staged.isNew && exists:
			return errs.NewValueIsInvalidErrorWithCause("email", errDuplicateEmail)
		case !staged.isNew && !exists:
			return errs.NewObjectNotFoundError("courier", id)
		case !staged.isNew && current.Version() != staged.expected:
			return errs.NewVersionIsInvalidError("courier", staged.expected)
		}
		for otherID, other := range s.couriers {
			if !otherID.IsEqual(id) && other.Email() == staged.value.Email() {
				return errs.NewValueIsInvalidErrorWithCause("email", errDuplicateEmail)
			}
		}
	}

	for key := range u.reviews {
		if _, exists := s.reviews[key]; exists {
			return review.ErrAlreadyReviewed
		}
	}

	for id, staged := range u.orders {
		s.orders[id] = staged.value
	}
	for id, staged := range u.couriers {
		s.couriers[id] = staged.value
	}
	for key, rv := range u.reviews {
		s.reviews[key] = rv
	}
	return nil
}
