package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

var ErrNoOpenOrders = errors.New("no open orders")

// DispatchOpenOrderCommandHandler uses the admin assign transition, so it
// competes with courier claims under the same compare-and-swap rules.
type DispatchOpenOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewDispatchOpenOrderCommandHandler(uowFactory UoWFactory) DispatchOpenOrderCommandHandler {
	return DispatchOpenOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns ErrNoOpenOrders or services.ErrCourierNotFound when there is
// nothing to do.
func (h DispatchOpenOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOpenOrderCommand) (*order.Order, error) {
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

	open, err := uow.OrderRepository().ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, ErrNoOpenOrders
	}

	couriers, err := uow.CourierRepository().ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	assigner := services.NewDeliveryAssigner()
	c, err := assigner.PickCourier(couriers)
	if err != nil {
		return nil, err
	}

	o := open[0]
	if err = assigner.Bind(services.ModeAssign, o, c, time.Now()); err != nil {
		return nil, err
	}
	if err = persistDelivery(ctx, uow, o, c, bindConflicts(services.ModeAssign)); err != nil {
		return nil, err
	}
	return o, nil
}
