package memory

import (
	"context"
	"slices"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
)

type reviewRepository struct {
	uow *UnitOfWork
}

func (r *reviewRepository) Add(ctx context.Context, rv *review.Review) error {
	if err := checkContext(ctx, "reviews.add"); err != nil {
		return err
	}
	if err := rv.Validate(); err != nil {
		return err
	}
	key := reviewKey{customerID: rv.CustomerID(), orderID: rv.OrderID(), menuItemID: rv.MenuItemID()}
	return r.uow.write(ctx, func(tx *UnitOfWork) error {
		if _, staged := tx.reviews[key]; staged {
			return review.ErrAlreadyReviewed
		}
		tx.reviews[key] = *rv
		return nil
	})
}

func (r *reviewRepository) Exists(ctx context.Context, customerID, orderID, menuItemID kernel.UUID) (bool, error) {
	if err := checkContext(ctx, "reviews.exists"); err != nil {
		return false, err
	}
	key := reviewKey{customerID: customerID, orderID: orderID, menuItemID: menuItemID}
	if _, staged := r.uow.reviews[key]; staged {
		return true, nil
	}

	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.reviews[key]
	return exists, nil
}

func (r *reviewRepository) ListByMenuItem(ctx context.Context, menuItemID kernel.UUID) ([]*review.Review, error) {
	if err := checkContext(ctx, "reviews.list_by_menu_item"); err != nil {
		return nil, err
	}

	s := r.uow.store
	s.mu.RLock()
	result := make([]*review.Review, 0)
	for key, rv := range s.reviews {
		if key.menuItemID.IsEqual(menuItemID) {
			result = append(result, &rv)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(result, func(a, b *review.Review) int {
		return newestFirst(a.CreatedAt(), b.CreatedAt(), a.ID(), b.ID())
	})
	return result, nil
}
