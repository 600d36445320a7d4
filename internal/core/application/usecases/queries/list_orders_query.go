package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
	ErrListAllOrdersQueryIsNotConstructed = errors.New(
		"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
	)
	ErrListOpenOrdersQueryIsNotConstructed = errors.New(
		"ListOpenOrdersQuery must be created via NewListOpenOrdersQuery constructor",
	)
)

// ListCustomerOrdersQuery lists the caller's own orders.
type ListCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(actor kernel.Actor) (ListCustomerOrdersQuery, error) {
	if err := actor.UserID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	return ListCustomerOrdersQuery{customerID: actor.UserID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// ListAllOrdersQuery is the staff view of every order.
type ListAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListAllOrdersQuery(actor kernel.Actor) (ListAllOrdersQuery, error) {
	if err := actor.Require(kernel.RoleAdmin, kernel.RoleKitchenChief); err != nil {
		return ListAllOrdersQuery{}, err
	}
	return ListAllOrdersQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

// ListOpenOrdersQuery lists orders a courier may accept, oldest first.
type ListOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOpenOrdersQuery(actor kernel.Actor) (ListOpenOrdersQuery, error) {
	if err := actor.Require(kernel.RoleCourier, kernel.RoleAdmin); err != nil {
		return ListOpenOrdersQuery{}, err
	}
	return ListOpenOrdersQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q ListOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOpenOrdersQueryIsNotConstructed)
}
