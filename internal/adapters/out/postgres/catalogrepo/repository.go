// Package catalogrepo reads menu items for pricing. The table is owned by the
// catalog; this service only seeds it for local runs.
package catalogrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available bool            `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

type GormCatalog struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGormCatalog(db *gorm.DB, timeout time.Duration) *GormCatalog {
	return &GormCatalog{db: db, timeout: timeout}
}

func (c *GormCatalog) GetItem(ctx context.Context, id kernel.UUID) (ports.CatalogItem, error) {
	if err := id.Validate(); err != nil {
		return ports.CatalogItem{}, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var dto MenuItemDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CatalogItem{}, errs.NewObjectNotFoundError("menuItem", id)
		}
		return ports.CatalogItem{}, pgerrs.Translate("menu_items.get", err)
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return ports.CatalogItem{}, err
	}
	return ports.CatalogItem{ID: id, Name: dto.Name, Price: price, Available: dto.Available}, nil
}

// Put inserts items or overwrites the stored name, price and availability.
func (c *GormCatalog) Put(ctx context.Context, items ...ports.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	dtos := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, MenuItemDTO{
			ID:        item.ID.Google(),
			Name:      item.Name,
			Price:     item.Price.Decimal(),
			Available: item.Available,
		})
	}
	err := c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "available"}),
		}).
		Create(&dtos).Error
	return pgerrs.Translate("menu_items.put", err)
}

func (c *GormCatalog) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}
