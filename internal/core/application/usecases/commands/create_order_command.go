package commands

import (
	"errors"

	"foodorder/internal/core/application/pricing"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order for the calling customer. Lines carry
// menu item ids and quantities only; prices come from the catalog.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	lines           []pricing.Line
	deliveryAddress string
	paymentMethod   string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	actor kernel.Actor,
	lines []pricing.Line,
	deliveryAddress string,
	paymentMethod string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress: deliveryAddress,
		paymentMethod:   paymentMethod,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(actor.UserID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) Lines() []pricing.Line {
	return c.lines
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setLines(lines []pricing.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.lines = make([]pricing.Line, len(lines))
	copy(c.lines, lines)
	return nil
}
