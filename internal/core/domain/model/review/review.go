package review

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	MinRating        = 1
	MaxRating        = 5
	maxCommentLength = 1000
)

var (
	ErrReviewIsNotConstructed = errors.New("review must be created via NewReview constructor")

	// ErrNotEligible is returned when the order is not the customer's, is not
	// delivered, or does not contain the item.
	ErrNotEligible = errors.New("order is not eligible for review")

	// ErrAlreadyReviewed is returned for a second review of the same item from the same order.
	ErrAlreadyReviewed = errors.New("item already reviewed for this order")
)

// Review is an immutable rating of one menu item from one delivered order.
type Review struct {
	id         kernel.UUID
	customerID kernel.UUID
	orderID    kernel.UUID
	menuItemID kernel.UUID
	rating     int
	comment    string
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// CheckEligibility verifies that customerID may review menuItemID from o.
func CheckEligibility(o *order.Order, customerID, menuItemID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.BelongsTo(customerID) || o.Status() != order.Delivered || !o.ContainsItem(menuItemID) {
		return ErrNotEligible
	}
	return nil
}

// NewReview records a rating from an eligible order.
func NewReview(
	id kernel.UUID,
	o *order.Order,
	customerID, menuItemID kernel.UUID,
	rating int,
	comment string,
	now time.Time,
) (*Review, error) {
	r := &Review{
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		r.setID(id),
		r.setRating(rating),
		r.setComment(comment),
	); err != nil {
		return nil, err
	}
	if err := CheckEligibility(o, customerID, menuItemID); err != nil {
		return nil, err
	}

	r.customerID = customerID
	r.orderID = o.ID()
	r.menuItemID = menuItemID
	return r, nil
}

// RestoreReview rebuilds a review read from storage.
func RestoreReview(
	id, customerID, orderID, menuItemID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	r := &Review{
		customerID: customerID,
		orderID:    orderID,
		menuItemID: menuItemID,
		createdAt:  createdAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		r.setID(id),
		r.setRating(rating),
		r.setComment(comment),
	); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

func (r *Review) ID() kernel.UUID {
	return r.id
}

func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

func (r *Review) MenuItemID() kernel.UUID {
	return r.menuItemID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Comment() string {
	return r.comment
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	r.id = id
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}

func (r *Review) setComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if n := utf8.RuneCountInString(comment); n > maxCommentLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("comment", n, 0, maxCommentLength,
			fmt.Errorf("comment is %d characters long", n))
	}
	r.comment = comment
	return nil
}
