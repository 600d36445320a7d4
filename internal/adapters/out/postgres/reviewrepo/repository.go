// Package reviewrepo persists reviews. A unique index on
// (customer_id, order_id, menu_item_id) backs the one-review-per-item rule.
package reviewrepo

import (
	"context"
	"time"

	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_customer_order_item,priority:1"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_customer_order_item,priority:2"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_customer_order_item,priority:3;index"`
	Rating     int       `gorm:"type:smallint;not null;check:rating BETWEEN 1 AND 5"`
	Comment    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

type GormReviewRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGormReviewRepository(db *gorm.DB, timeout time.Duration) *GormReviewRepository {
	return &GormReviewRepository{db: db, timeout: timeout}
}

// Add inserts r; a second review of the same item from the same order fails
// with review.ErrAlreadyReviewed.
func (r *GormReviewRepository) Add(ctx context.Context, rv *review.Review) error {
	if err := rv.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	dto := ReviewDTO{
		ID:         rv.ID().Google(),
		CustomerID: rv.CustomerID().Google(),
		OrderID:    rv.OrderID().Google(),
		MenuItemID: rv.MenuItemID().Google(),
		Rating:     rv.Rating(),
		Comment:    rv.Comment(),
		CreatedAt:  rv.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return review.ErrAlreadyReviewed
		}
		return pgerrs.Translate("reviews.add", err)
	}
	return nil
}

func (r *GormReviewRepository) Exists(ctx context.Context, customerID, orderID, menuItemID kernel.UUID) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("customer_id = ? AND order_id = ? AND menu_item_id = ?",
			customerID.Google(), orderID.Google(), menuItemID.Google()).
		Count(&count).Error
	if err != nil {
		return false, pgerrs.Translate("reviews.exists", err)
	}
	return count > 0, nil
}

// ListByMenuItem returns the item's reviews, newest first.
func (r *GormReviewRepository) ListByMenuItem(ctx context.Context, menuItemID kernel.UUID) ([]*review.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var dtos []ReviewDTO
	err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID.Google()).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrs.Translate("reviews.list_by_menu_item", err)
	}

	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		rv, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.CustomerID, dto.OrderID, dto.MenuItemID} {
		id, err := kernel.FromGoogleUUID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return review.RestoreReview(ids[0], ids[1], ids[2], ids[3], dto.Rating, dto.Comment, dto.CreatedAt)
}

func (r *GormReviewRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}
