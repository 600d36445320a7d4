package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrMarkDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
	)
)

// AcceptOrderCommand is a courier claiming an open order for themselves.
// The courier id is the caller's user id.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(actor kernel.Actor, orderID kernel.UUID) (AcceptOrderCommand, error) {
	if err := actor.Require(kernel.RoleCourier); err != nil {
		return AcceptOrderCommand{}, err
	}
	if err := errors.Join(actor.UserID.Validate(), orderID.Validate()); err != nil {
		return AcceptOrderCommand{}, err
	}
	return AcceptOrderCommand{
		courierID: actor.UserID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MarkDeliveredCommand is a courier finishing the order they hold.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkDeliveredCommand(actor kernel.Actor, orderID kernel.UUID) (MarkDeliveredCommand, error) {
	if err := actor.Require(kernel.RoleCourier); err != nil {
		return MarkDeliveredCommand{}, err
	}
	if err := errors.Join(actor.UserID.Validate(), orderID.Validate()); err != nil {
		return MarkDeliveredCommand{}, err
	}
	return MarkDeliveredCommand{
		courierID: actor.UserID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}
