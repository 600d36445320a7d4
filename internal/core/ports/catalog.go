package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// CatalogItem is the read-only view of a menu item used for pricing.
type CatalogItem struct {
	ID        kernel.UUID
	Name      string
	Price     kernel.Money
	Available bool
}

// Catalog resolves menu items. GetItem returns errs.ObjectNotFoundError with
// ParamName "menuItem" for unknown ids.
type Catalog interface {
	GetItem(ctx context.Context, id kernel.UUID) (CatalogItem, error)
}
