package kernel

import (
	"fmt"
	"slices"

	"foodorder/internal/pkg/errs"
)

// Role is the authorization role carried by a verified caller.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleAdmin        Role = "admin"
	RoleKitchenChief Role = "kitchen-chief"
	RoleCourier      Role = "courier"
)

var knownRoles = []Role{RoleCustomer, RoleAdmin, RoleKitchenChief, RoleCourier}

// ParseRole accepts the role names issued by the identity service.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !slices.Contains(knownRoles, role) {
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
	return role, nil
}

// IsElevated reports whether the role may act on orders it does not own.
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleKitchenChief
}

func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated caller. The core trusts it as given.
type Actor struct {
	UserID UUID
	Role   Role
}

func NewActor(userID UUID, role Role) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	return Actor{UserID: userID, Role: role}, nil
}

// Require fails with AccessDenied unless the actor holds one of roles.
func (a Actor) Require(roles ...Role) error {
	if slices.Contains(roles, a.Role) {
		return nil
	}
	return errs.NewAccessDeniedError(fmt.Sprintf("role %q may not perform this operation", a.Role))
}
