package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
)

// ReviewRepository stores reviews. (customer, order, menu item) is unique;
// inserting a duplicate fails with review.ErrAlreadyReviewed.
type ReviewRepository interface {
	Add(ctx context.Context, r *review.Review) error
	Exists(ctx context.Context, customerID, orderID, menuItemID kernel.UUID) (bool, error)

	// ListByMenuItem returns the item's reviews, newest first.
	ListByMenuItem(ctx context.Context, menuItemID kernel.UUID) ([]*review.Review, error)
}
