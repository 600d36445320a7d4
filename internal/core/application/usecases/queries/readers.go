// Package queries contains read operations. Handlers read through repository
// interfaces outside any transaction and return flat read models.
package queries

import (
	"context"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
)

type (
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
		ListAll(ctx context.Context) ([]*order.Order, error)
		ListOpen(ctx context.Context) ([]*order.Order, error)
	}

	CourierReader interface {
		Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
		ListAll(ctx context.Context) ([]*courier.Courier, error)
		ListAvailable(ctx context.Context) ([]*courier.Courier, error)
	}

	ReviewReader interface {
		ListByMenuItem(ctx context.Context, menuItemID kernel.UUID) ([]*review.Review, error)
	}
)
