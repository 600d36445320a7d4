package commands

import (
	"context"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// AcceptOrderCommandHandler runs the courier claim. Of two couriers racing for
// the same order exactly one commits; the other gets order.ErrAlreadyClaimed.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{uowFactory: uowFactory}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return bindDelivery(ctx, h.uowFactory, services.ModeClaim, cmd.OrderID(), cmd.CourierID())
}

// MarkDeliveredCommandHandler lets the holding courier deliver; anybody else
// gets courier.ErrNotOwner.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkDeliveredCommandHandler(uowFactory UoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{uowFactory: uowFactory}
}

func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*order.Order, error) {
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

	c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}
	if current := c.CurrentOrder(); current == nil || !current.IsEqual(cmd.OrderID()) {
		return nil, courier.ErrNotOwner
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = releaseDelivery(ctx, uow, o, c); err != nil {
		return nil, err
	}
	return o, nil
}
