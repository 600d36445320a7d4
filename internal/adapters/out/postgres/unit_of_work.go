// Package postgres implements the unit of work over GORM.
//
// Order and courier writes are conditional on the version read, so two
// transactions racing for the same order or courier cannot both commit:
// the loser's UPDATE matches zero rows once the winner commits and the
// repository reports errs.VersionIsInvalidError.
//
// Basic transaction management:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.CourierRepository().Update(ctx, c); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin, or from a unit of work that is never
// begun, run each statement on its own connection.
package postgres

import (
	"context"
	"time"

	"foodorder/internal/adapters/out/postgres/courierrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/adapters/out/postgres/reviewrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"gorm.io/gorm"
)

// persisted is implemented by aggregates that carry a storage version.
type persisted interface {
	MarkPersisted()
}

// trackedAggregate is an aggregate whose stored version was bumped inside the
// current transaction.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate persisted
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory whose repositories bound each
// statement by timeout.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, 3*time.Second)
func NewGormUnitOfWorkFactory(db *gorm.DB, timeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, timeout: timeout}
}

// Create produces a fresh unit of work. Instances must not be shared between goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		timeout:           f.timeout,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork wraps one database transaction. Aggregates updated inside it
// learn their new version only after Commit succeeds.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	timeout           time.Duration
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerrs.Translate("begin", tx.Error)
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit finalizes the transaction and advances the version of every tracked aggregate.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if err != nil {
		return pgerrs.Translate("commit", err)
	}

	for _, t := range tracked {
		t.Aggregate.MarkPersisted()
	}
	return nil
}

// Rollback discards the transaction. After Commit it returns
// gorm.ErrInvalidTransaction, which deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = make([]trackedAggregate, 0)
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow, uow.timeout)
}

func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow, uow.timeout)
}

func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormReviewRepository(uow.conn(), uow.timeout)
}

// TrackAggregate is called by repositories after a successful conditional
// update. Outside a transaction the write is already durable, so the version
// advances immediately.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	p, ok := aggregate.(persisted)
	if !ok {
		return
	}
	if uow.tx == nil {
		p.MarkPersisted()
		return
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{ID: id, Aggregate: p})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
