package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	timeout time.Duration
}

// aggregateTracker is told about every aggregate whose version a write advanced.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a repository bound to db, which may be a transaction.
// Each call is limited to timeout when it is positive.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, timeout time.Duration) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		timeout: timeout,
	}
}

// Add inserts a new order and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate("orders.add", err)
	}
	return nil
}

// Update writes status, courier and payment state only if the stored version
// still equals the aggregate's, and bumps it. Line items never change.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":         dto.Status,
			"courier_id":     dto.CourierID,
			"payment_method": dto.PaymentMethod,
			"payment_status": dto.PaymentStatus,
			"updated_at":     dto.UpdatedAt,
			"version":        gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return pgerrs.Translate("orders.update", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return pgerrs.Translate("orders.update", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		return errs.NewVersionIsInvalidError("order", aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, pgerrs.Translate("orders.get", err)
	}

	return toDomain(dto)
}

// ListByCustomer returns the customer's orders, newest first.
func (r *GormOrderRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	return r.find(ctx, "orders.list_by_customer", func(db *gorm.DB) *gorm.DB {
		return db.Where("customer_id = ?", customerID.Google()).Order("created_at DESC, id DESC")
	})
}

// ListAll returns every order, newest first.
func (r *GormOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, "orders.list_all", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC, id DESC")
	})
}

// ListOpen returns pending orders without a courier, oldest first.
func (r *GormOrderRepository) ListOpen(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, "orders.list_open", func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND courier_id IS NULL", order.Pending.String()).
			Order("created_at ASC, id ASC")
	})
}

func (r *GormOrderRepository) find(
	ctx context.Context,
	operation string,
	scope func(db *gorm.DB) *gorm.DB,
) ([]*order.Order, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var dtos []OrderDTO
	if err := r.withItems(ctx).Scopes(scope).Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate(operation, err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func (r *GormOrderRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}
