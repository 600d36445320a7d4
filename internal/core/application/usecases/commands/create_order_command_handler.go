package commands

import (
	"context"
	"time"

	"foodorder/internal/core/application/pricing"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// Pricer quotes requested lines against the catalog.
type Pricer interface {
	Quote(ctx context.Context, lines []pricing.Line) (pricing.Quote, error)
}

// CreateOrderCommandHandler prices the requested items and stores a pending order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     Pricer
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, pricer Pricer) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	quote, err := h.pricer.Quote(ctx, cmd.Lines())
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(cmd.PaymentMethod())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), quote.Items, cmd.DeliveryAddress(), payment, time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
