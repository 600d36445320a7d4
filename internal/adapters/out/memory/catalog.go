package memory

import (
	"context"
	"sync"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// Catalog is a read-mostly menu used by the memory driver and in tests.
type Catalog struct {
	mu    sync.RWMutex
	items map[kernel.UUID]ports.CatalogItem
}

func NewCatalog(items ...ports.CatalogItem) *Catalog {
	c := &Catalog{items: make(map[kernel.UUID]ports.CatalogItem, len(items))}
	c.put(items)
	return c
}

// Put adds or replaces items.
func (c *Catalog) Put(ctx context.Context, items ...ports.CatalogItem) error {
	if err := checkContext(ctx, "catalog.put"); err != nil {
		return err
	}
	c.put(items)
	return nil
}

func (c *Catalog) put(items []ports.CatalogItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		c.items[item.ID] = item
	}
}

func (c *Catalog) GetItem(ctx context.Context, id kernel.UUID) (ports.CatalogItem, error) {
	if err := checkContext(ctx, "catalog.get_item"); err != nil {
		return ports.CatalogItem{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		return ports.CatalogItem{}, errs.NewObjectNotFoundError("menuItem", id)
	}
	return item, nil
}
