package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// conflicts translates a lost compare-and-swap into the error the caller
// would have seen had it lost the race before loading.
type conflicts struct {
	onOrder   error
	onCourier error
}

func bindConflicts(mode services.BindMode) conflicts {
	if mode == services.ModeAssign {
		return conflicts{onOrder: order.ErrAlreadyClaimed, onCourier: courier.ErrCourierUnavailable}
	}
	return conflicts{onOrder: order.ErrAlreadyClaimed, onCourier: courier.ErrAlreadyActive}
}

var releaseConflicts = conflicts{onOrder: courier.ErrNotOwner, onCourier: courier.ErrNotOwner}

func (c conflicts) translate(err error) error {
	switch {
	case errs.IsVersionConflictOn(err, "order"):
		return c.onOrder
	case errs.IsVersionConflictOn(err, "courier"):
		return c.onCourier
	default:
		return err
	}
}

// bindDelivery attaches courierID to orderID. The courier is loaded first so a
// missing or busy courier is reported before anything about the order.
func bindDelivery(
	ctx context.Context,
	uowFactory UoWFactory,
	mode services.BindMode,
	orderID, courierID kernel.UUID,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	c, err := courierRepo.Get(ctx, courierID)
	if err != nil {
		return nil, err
	}
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = services.NewDeliveryAssigner().Bind(mode, o, c, time.Now()); err != nil {
		return nil, err
	}

	if err = persistDelivery(ctx, uow, o, c, bindConflicts(mode)); err != nil {
		return nil, err
	}
	return o, nil
}

// releaseDelivery delivers o and frees c inside an already begun unit of work,
// then commits it.
func releaseDelivery(ctx context.Context, uow UoW, o *order.Order, c *courier.Courier) error {
	if err := services.NewDeliveryAssigner().Release(o, c, time.Now()); err != nil {
		return err
	}
	return persistDelivery(ctx, uow, o, c, releaseConflicts)
}

func persistDelivery(ctx context.Context, uow UoW, o *order.Order, c *courier.Courier, cf conflicts) error {
	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return cf.translate(err)
	}
	if err := uow.CourierRepository().Update(ctx, c); err != nil {
		return cf.translate(err)
	}
	if err := uow.Commit(ctx); err != nil {
		return cf.translate(err)
	}
	return nil
}
