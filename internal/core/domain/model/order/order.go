package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const maxDeliveryAddressLength = 500

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder constructor")

	// ErrAlreadyClaimed is returned when a courier tries to take an order that is
	// no longer open.
	ErrAlreadyClaimed = errors.New("order is already claimed")

	// ErrOrderIsFinal is returned for any change to a delivered order.
	ErrOrderIsFinal = errs.NewValueIsInvalidErrorWithCause("status", errors.New("delivered orders cannot change"))

	// ErrCourierAttached is returned when an override would leave an order's
	// courier dangling. Completing the delivery is the only way out.
	ErrCourierAttached = errs.NewValueIsInvalidErrorWithCause("status", errors.New("order is held by a courier"))
)

// Order is the aggregate root for a customer's food order.
//
// Invariants:
//   - total equals the sum of the line subtotals
//   - a courier is attached iff the order is onTheWay, or optionally once delivered
//   - version grows by one on every persisted change
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	items           []LineItem
	total           kernel.Money
	deliveryAddress string
	payment         Payment
	status          Status
	courierID       *kernel.UUID
	createdAt       time.Time
	updatedAt       time.Time

	// version is the value read from storage; repositories write conditionally on it.
	version int

	guard guard.ConstructorGuard
}

// NewOrder places a pending order. Items must already be priced from the
// catalog; the total is derived from them.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	deliveryAddress string,
	payment Payment,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		payment:   payment,
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	o.total = sumItems(o.items)
	return o, nil
}

// RestoreOrder rebuilds an order read from storage and rechecks its invariants.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	total kernel.Money,
	deliveryAddress string,
	payment Payment,
	status Status,
	courierID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		total:     total,
		payment:   payment,
		createdAt: createdAt.UTC(),
		updatedAt: updatedAt.UTC(),
		version:   version,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setStatus(status, courierID),
	); err != nil {
		return nil, err
	}

	if expected := sumItems(o.items); !expected.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s does not match line items sum %s", total, expected),
		)
	}
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *Order) Payment() Payment {
	return o.payment
}

func (o *Order) Status() Status {
	return o.status
}

// Courier returns the attached courier, nil when none.
func (o *Order) Courier() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) Version() int {
	return o.version
}

// IsOpen reports whether a courier may claim the order.
func (o *Order) IsOpen() bool {
	return o.status == Pending && o.courierID == nil
}

// IsHeldBy reports whether courierID is the courier attached to the order.
func (o *Order) IsHeldBy(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

func (o *Order) BelongsTo(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// ContainsItem reports whether any line refers to menuItemID.
func (o *Order) ContainsItem(menuItemID kernel.UUID) bool {
	for _, item := range o.items {
		if item.MenuItemID().IsEqual(menuItemID) {
			return true
		}
	}
	return false
}

// Prepare hands a pending order to the kitchen.
func (o *Order) Prepare(now time.Time) error {
	next, err := o.status.Prepare()
	if err != nil {
		return err
	}

	o.status = next
	o.touch(now)
	return nil
}

// AssignCourier dispatches the order with courierID attached.
func (o *Order) AssignCourier(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return ErrAlreadyClaimed
	}

	next, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = next
	o.courierID = &courierID
	o.touch(now)
	return nil
}

// Deliver completes the order. The courier stays attached for history.
func (o *Order) Deliver(now time.Time) error {
	next, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = next
	o.touch(now)
	return nil
}

// OverrideStatus lets staff move an order without a courier between pending,
// preparing and delivered. Orders held by a courier must be completed through
// the delivery flow instead.
func (o *Order) OverrideStatus(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if o.status == Delivered {
		return ErrOrderIsFinal
	}
	if o.courierID != nil {
		return ErrCourierAttached
	}
	if err := target.ValidateCanHaveCourier(false); err != nil {
		return err
	}

	o.status = target
	o.touch(now)
	return nil
}

// MarkPersisted advances the in-memory version after a successful conditional write.
func (o *Order) MarkPersisted() {
	o.version++
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now.UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if len(address) > maxDeliveryAddressLength {
		return errs.NewValueIsOutOfRangeError("deliveryAddress", len(address), 1, maxDeliveryAddressLength)
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setStatus(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}
	o.status = status
	if courierID != nil {
		id := *courierID
		o.courierID = &id
	}
	return nil
}

func sumItems(items []LineItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
