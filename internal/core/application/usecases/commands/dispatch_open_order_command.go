package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrDispatchOpenOrderCommandIsNotConstructed = errors.New(
	"DispatchOpenOrderCommand must be created via NewDispatchOpenOrderCommand constructor",
)

// DispatchOpenOrderCommand hands the oldest open order to the first available
// courier. It is issued by the scheduler, not by a user.
type DispatchOpenOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewDispatchOpenOrderCommand() DispatchOpenOrderCommand {
	return DispatchOpenOrderCommand{guard: guard.NewConstructorGuard()}
}

func (c DispatchOpenOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOpenOrderCommandIsNotConstructed)
}
