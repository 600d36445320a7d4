package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// SetOrderStatusCommandHandler applies staff overrides. Pending orders move to
// preparing through the regular kitchen transition. Delivering an order
// that a courier holds goes through the release transition so the courier is
// freed in the same unit of work. A concurrent change surfaces as
// errs.VersionIsInvalidError.
type SetOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewSetOrderStatusCommandHandler(uowFactory UoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (*order.Order, error) {
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

	if holder := o.Courier(); holder != nil && cmd.Status() == order.Delivered && o.Status() == order.OnTheWay {
		c, err := uow.CourierRepository().Get(ctx, *holder)
		if err != nil {
			return nil, err
		}
		if err = releaseDelivery(ctx, uow, o, c); err != nil {
			return nil, err
		}
		return o, nil
	}

	if cmd.Status() == order.Preparing && o.Status() == order.Pending {
		err = o.Prepare(time.Now())
	} else {
		err = o.OverrideStatus(cmd.Status(), time.Now())
	}
	if err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
