package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListItemReviewsQueryIsNotConstructed = errors.New(
	"ListItemReviewsQuery must be created via NewListItemReviewsQuery constructor",
)

// ListItemReviewsQuery is public; no actor is needed.
type ListItemReviewsQuery struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListItemReviewsQuery(menuItemID kernel.UUID) (ListItemReviewsQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return ListItemReviewsQuery{}, err
	}
	return ListItemReviewsQuery{menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListItemReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListItemReviewsQueryIsNotConstructed)
}

func (q ListItemReviewsQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}

type ItemReviewsResponse struct {
	MenuItemID kernel.UUID
	Count      int
	Average    decimal.Decimal
	Reviews    []ReviewView
}
