package courierrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

var errDuplicateEmail = errors.New("a courier with this email already exists")

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	timeout time.Duration
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker, timeout time.Duration) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
		timeout: timeout,
	}
}

// Add inserts a courier. A taken email is reported as an invalid email.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("email", errDuplicateEmail)
		}
		return pgerrs.Translate("couriers.add", err)
	}
	return nil
}

// Update writes availability only if the stored version still equals the
// aggregate's, and bumps it.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":           dto.Status,
			"current_order_id": dto.CurrentOrderID,
			"version":          gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		if pgerrs.IsUniqueViolation(result.Error) {
			// another courier already holds current_order_id
			return errs.NewVersionIsInvalidErrorWithCause("courier", aggregate.Version(), result.Error)
		}
		return pgerrs.Translate("couriers.update", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return pgerrs.Translate("couriers.update", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("courier", aggregate.ID())
		}
		return errs.NewVersionIsInvalidError("courier", aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "couriers.get", id, "id = ?", id.Google())
}

// GetByEmail matches case-insensitively.
func (r *GormCourierRepository) GetByEmail(ctx context.Context, email string) (*courier.Courier, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.first(ctx, "couriers.get_by_email", email, "email = ?", email)
}

// ListAll returns every courier ordered by name.
func (r *GormCourierRepository) ListAll(ctx context.Context) ([]*courier.Courier, error) {
	return r.find(ctx, "couriers.list_all", func(db *gorm.DB) *gorm.DB {
		return db.Order("name ASC, id ASC")
	})
}

// ListAvailable returns available couriers, longest registered first.
func (r *GormCourierRepository) ListAvailable(ctx context.Context) ([]*courier.Courier, error) {
	return r.find(ctx, "couriers.list_available", func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", courier.Available.String()).Order("created_at ASC, id ASC")
	})
}

func (r *GormCourierRepository) first(ctx context.Context, operation string, key any, query string, args ...any) (*courier.Courier, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var dto CourierDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", key)
		}
		return nil, pgerrs.Translate(operation, err)
	}
	return toDomain(dto)
}

func (r *GormCourierRepository) find(
	ctx context.Context,
	operation string,
	scope func(db *gorm.DB) *gorm.DB,
) ([]*courier.Courier, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Scopes(scope).Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate(operation, err)
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}

func (r *GormCourierRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}
