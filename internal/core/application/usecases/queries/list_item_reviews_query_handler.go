package queries

import (
	"context"

	"foodorder/internal/core/domain/model/review"
)

type ListItemReviewsQueryHandler struct {
	reviews ReviewReader
}

func NewListItemReviewsQueryHandler(reviews ReviewReader) ListItemReviewsQueryHandler {
	return ListItemReviewsQueryHandler{reviews: reviews}
}

// Handle lists reviews newest first with their count and average.
func (h ListItemReviewsQueryHandler) Handle(ctx context.Context, query ListItemReviewsQuery) (ItemReviewsResponse, error) {
	if err := query.Validate(); err != nil {
		return ItemReviewsResponse{}, err
	}

	reviews, err := h.reviews.ListByMenuItem(ctx, query.MenuItemID())
	if err != nil {
		return ItemReviewsResponse{}, err
	}

	summary := review.Summarize(reviews)
	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, NewReviewView(r))
	}
	return ItemReviewsResponse{
		MenuItemID: query.MenuItemID(),
		Count:      summary.Count,
		Average:    summary.Average,
		Reviews:    views,
	}, nil
}
