package services

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned by PickCourier when nobody is available.
var ErrCourierNotFound = errors.New("no available courier")

// BindMode selects who is binding and therefore which error a conflict maps to.
type BindMode int

const (
	// ModeClaim is a courier accepting an open order.
	ModeClaim BindMode = iota + 1
	// ModeAssign is staff handing a pending or preparing order to a courier.
	ModeAssign
)

// DeliveryAssigner enforces that a courier holds at most one order and an
// order is held by at most one courier.
type DeliveryAssigner struct{}

func NewDeliveryAssigner() DeliveryAssigner {
	return DeliveryAssigner{}
}

// Bind attaches c to o. The courier is checked first:
//   - ModeClaim: busy courier → courier.ErrAlreadyActive, order not open → order.ErrAlreadyClaimed
//   - ModeAssign: busy courier → courier.ErrCourierUnavailable, order with a courier → order.ErrAlreadyClaimed
func (DeliveryAssigner) Bind(mode BindMode, o *order.Order, c *courier.Courier, now time.Time) error {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return err
	}

	if !c.IsAvailable() {
		if mode == ModeAssign {
			return courier.ErrCourierUnavailable
		}
		return courier.ErrAlreadyActive
	}
	if mode == ModeClaim && !o.IsOpen() {
		return order.ErrAlreadyClaimed
	}

	if err := o.AssignCourier(c.ID(), now); err != nil {
		return err
	}
	return c.Claim(o.ID())
}

// Release delivers o and frees c. c must be the courier holding o.
func (DeliveryAssigner) Release(o *order.Order, c *courier.Courier, now time.Time) error {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return err
	}

	current := c.CurrentOrder()
	if current == nil || !current.IsEqual(o.ID()) || !o.IsHeldBy(c.ID()) {
		return courier.ErrNotOwner
	}

	if err := o.Deliver(now); err != nil {
		return err
	}
	return c.Release(o.ID())
}

// PickCourier returns the first available courier.
func (DeliveryAssigner) PickCourier(couriers []*courier.Courier) (*courier.Courier, error) {
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.IsAvailable() {
			return c, nil
		}
	}
	return nil, ErrCourierNotFound
}
