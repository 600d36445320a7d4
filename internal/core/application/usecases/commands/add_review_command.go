package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAddReviewCommandIsNotConstructed = errors.New(
	"AddReviewCommand must be created via NewAddReviewCommand constructor",
)

// AddReviewCommand rates one item of the caller's delivered order.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID
	menuItemID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand only checks ids; rating and comment are validated by the review itself.
func NewAddReviewCommand(
	actor kernel.Actor,
	orderID, menuItemID kernel.UUID,
	rating int,
	comment string,
) (AddReviewCommand, error) {
	if err := errors.Join(actor.UserID.Validate(), orderID.Validate(), menuItemID.Validate()); err != nil {
		return AddReviewCommand{}, err
	}
	return AddReviewCommand{
		customerID: actor.UserID,
		orderID:    orderID,
		menuItemID: menuItemID,
		rating:     rating,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

func (c AddReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c AddReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddReviewCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c AddReviewCommand) Rating() int {
	return c.rating
}

func (c AddReviewCommand) Comment() string {
	return c.comment
}
