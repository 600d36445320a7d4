package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery lists couriers for admins, optionally only available ones.
type ListCouriersQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

func NewListCouriersQuery(actor kernel.Actor, availableOnly bool) (ListCouriersQuery, error) {
	if err := actor.Require(kernel.RoleAdmin); err != nil {
		return ListCouriersQuery{}, err
	}
	return ListCouriersQuery{availableOnly: availableOnly, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

func (q ListCouriersQuery) AvailableOnly() bool {
	return q.availableOnly
}
