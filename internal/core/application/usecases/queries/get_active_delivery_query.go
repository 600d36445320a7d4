package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetActiveDeliveryQueryIsNotConstructed = errors.New(
	"GetActiveDeliveryQuery must be created via NewGetActiveDeliveryQuery constructor",
)

// GetActiveDeliveryQuery returns the order the calling courier holds.
type GetActiveDeliveryQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetActiveDeliveryQuery(actor kernel.Actor) (GetActiveDeliveryQuery, error) {
	if err := actor.Require(kernel.RoleCourier); err != nil {
		return GetActiveDeliveryQuery{}, err
	}
	if err := actor.UserID.Validate(); err != nil {
		return GetActiveDeliveryQuery{}, err
	}
	return GetActiveDeliveryQuery{courierID: actor.UserID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActiveDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveryQueryIsNotConstructed)
}

func (q GetActiveDeliveryQuery) CourierID() kernel.UUID {
	return q.courierID
}

// ActiveDeliveryResponse has Active false and no Order when the courier is free.
type ActiveDeliveryResponse struct {
	Active bool
	Order  *OrderView
}
