package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"
)

// AddReviewCommandHandler is the review gate. An order that does not exist is
// reported as review.ErrNotEligible, the same as one belonging to somebody else.
type AddReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

func NewAddReviewCommandHandler(uowFactory ReviewUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{uowFactory: uowFactory}
}

func (h AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) (*review.Review, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, review.ErrNotEligible
	}
	if err != nil {
		return nil, err
	}

	r, err := review.NewReview(kernel.NewUUID(), o, cmd.CustomerID(), cmd.MenuItemID(), cmd.Rating(), cmd.Comment(), time.Now())
	if err != nil {
		return nil, err
	}

	reviewRepo := uow.ReviewRepository()
	exists, err := reviewRepo.Exists(ctx, cmd.CustomerID(), cmd.OrderID(), cmd.MenuItemID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, review.ErrAlreadyReviewed
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return r, nil
}
