package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAssignDeliveryCommandIsNotConstructed = errors.New(
		"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
	)
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
)

// AssignDeliveryCommand is an admin handing an order to a specific courier.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDeliveryCommand(actor kernel.Actor, orderID, courierID kernel.UUID) (AssignDeliveryCommand, error) {
	if err := actor.Require(kernel.RoleAdmin); err != nil {
		return AssignDeliveryCommand{}, err
	}
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return AssignDeliveryCommand{}, err
	}
	return AssignDeliveryCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// CompleteDeliveryCommand is an admin closing a delivery on the courier's behalf.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(actor kernel.Actor, orderID kernel.UUID) (CompleteDeliveryCommand, error) {
	if err := actor.Require(kernel.RoleAdmin); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	if err := orderID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	return CompleteDeliveryCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}
