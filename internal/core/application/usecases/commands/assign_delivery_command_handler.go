package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

var ErrOrderHasNoCourier = errs.NewValueIsInvalidErrorWithCause(
	"order", errors.New("order has no courier to complete the delivery"),
)

type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignDeliveryCommandHandler(uowFactory UoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle fails with courier.ErrCourierUnavailable for a busy courier and
// order.ErrAlreadyClaimed for an order that already has one.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return bindDelivery(ctx, h.uowFactory, services.ModeAssign, cmd.OrderID(), cmd.CourierID())
}

type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle delivers the order and frees whichever courier holds it.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (*order.Order, error) {
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
	if err != nil {
		return nil, err
	}
	if o.Status() == order.Delivered {
		return nil, order.ErrOrderIsFinal
	}
	holder := o.Courier()
	if holder == nil {
		return nil, ErrOrderHasNoCourier
	}

	c, err := uow.CourierRepository().Get(ctx, *holder)
	if err != nil {
		return nil, err
	}
	if err = releaseDelivery(ctx, uow, o, c); err != nil {
		return nil, err
	}
	return o, nil
}
