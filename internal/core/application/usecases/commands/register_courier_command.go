package commands

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const minPasswordLength = 6

var (
	ErrRegisterCourierCommandIsNotConstructed = errors.New(
		"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
	)
	ErrPasswordsDoNotMatch = errs.NewValueIsInvalidErrorWithCause(
		"confirmPassword", errors.New("passwords do not match"),
	)
)

// RegisterCourierCommand adds a courier account. Only admins may issue it.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	phone    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand checks the password rules; name, email and phone
// are validated by the courier aggregate.
func NewRegisterCourierCommand(
	actor kernel.Actor,
	name, email, phone, password, confirmPassword string,
) (RegisterCourierCommand, error) {
	if err := actor.Require(kernel.RoleAdmin); err != nil {
		return RegisterCourierCommand{}, err
	}

	cmd := RegisterCourierCommand{
		name:  strings.TrimSpace(name),
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setPassword(password, confirmPassword); err != nil {
		return RegisterCourierCommand{}, err
	}
	return cmd, nil
}

func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

func (c RegisterCourierCommand) Name() string {
	return c.name
}

func (c RegisterCourierCommand) Email() string {
	return c.email
}

func (c RegisterCourierCommand) Phone() string {
	return c.phone
}

func (c RegisterCourierCommand) Password() string {
	return c.password
}

func (c *RegisterCourierCommand) setPassword(password, confirm string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("password", len(password), minPasswordLength, 72,
			fmt.Errorf("password must be at least %d characters", minPasswordLength))
	}
	if password != confirm {
		return ErrPasswordsDoNotMatch
	}
	c.password = password
	return nil
}
