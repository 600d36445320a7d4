package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var ErrEmailAlreadyRegistered = errs.NewValueIsInvalidErrorWithCause(
	"email", errors.New("a courier with this email already exists"),
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// RegisterCourierCommandHandler stores a new available courier with a hashed password.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	hasher     PasswordHasher
}

func NewRegisterCourierCommandHandler(uowFactory CourierUoWFactory, hasher PasswordHasher) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	c, err := courier.NewCourier(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Phone(), hash, time.Now())
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

	repo := uow.CourierRepository()
	_, err = repo.GetByEmail(ctx, c.Email())
	switch {
	case err == nil:
		return nil, ErrEmailAlreadyRegistered
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = repo.Add(ctx, c); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
