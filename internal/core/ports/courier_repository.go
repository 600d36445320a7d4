package ports

import (
	"context"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
)

// CourierRepository persists Courier aggregates.
type CourierRepository interface {
	// Add inserts a new courier. A duplicate email fails with errs.ValueIsInvalidError.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update writes the courier if its stored version still equals aggregate.Version().
	Update(ctx context.Context, aggregate *courier.Courier) error

	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByEmail matches the normalized (lower case) email.
	GetByEmail(ctx context.Context, email string) (*courier.Courier, error)

	// ListAll returns couriers ordered by name.
	ListAll(ctx context.Context) ([]*courier.Courier, error)

	// ListAvailable returns available couriers, longest registered first.
	ListAvailable(ctx context.Context) ([]*courier.Courier, error)
}
