package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status is the fulfilment state of an order.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	// Pending orders are placed and waiting for the kitchen or a courier.
	Pending
	// Preparing orders are being cooked.
	Preparing
	// OnTheWay orders are held by a courier.
	OnTheWay
	// Delivered is final for couriers and customers.
	Delivered
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Preparing: "preparing",
	OnTheWay:  "onTheWay",
	Delivered: "delivered",
}

// ParseStatus accepts the wire names used by the API.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Prepare starts cooking a pending order.
func (s Status) Prepare() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot be prepared", s),
		)
	}
	return Preparing, nil
}

// Dispatch moves a pending or preparing order on its way to the customer.
func (s Status) Dispatch() (Status, error) {
	if s != Pending && s != Preparing {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot be dispatched", s),
		)
	}
	return OnTheWay, nil
}

// Deliver completes an order that is on its way.
func (s Status) Deliver() (Status, error) {
	if s != OnTheWay {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot be delivered", s),
		)
	}
	return Delivered, nil
}

// ValidateCanHaveCourier checks the pairing between status and courier:
// onTheWay needs a courier, pending and preparing must not have one, delivered
// accepts both (an administrator may close an order nobody carried).
func (s Status) ValidateCanHaveCourier(hasCourier bool) error {
	switch {
	case s == OnTheWay && !hasCourier:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s order must have a courier", s))
	case (s == Pending || s == Preparing) && hasCourier:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s order cannot have a courier", s))
	}
	return nil
}
