// Package orderrepo persists order aggregates: one orders row plus its line items.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Version guards every update.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryAddress string          `gorm:"type:varchar(500);not null"`
	PaymentMethod   string          `gorm:"type:varchar(50);not null"`
	PaymentStatus   string          `gorm:"type:varchar(16);not null"`
	Status          string          `gorm:"type:varchar(16);not null;index"`
	CourierID       *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
	Version         int             `gorm:"not null"`
	Items           []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO keeps the name and unit price captured when the order was placed.
type LineItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position   int             `gorm:"primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (LineItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Google()
		courierID = &raw
	}

	items := make([]LineItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, LineItemDTO{
			OrderID:    o.ID().Google(),
			Position:   i,
			MenuItemID: item.MenuItemID().Google(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Google(),
		CustomerID:      o.CustomerID().Google(),
		Total:           o.Total().Decimal(),
		DeliveryAddress: o.DeliveryAddress(),
		PaymentMethod:   o.Payment().Method(),
		PaymentStatus:   string(o.Payment().Status()),
		Status:          o.Status().String(),
		CourierID:       courierID,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Version:         o.Version(),
		Items:           items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.FromGoogleUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.FromGoogleUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.FromGoogleUUID(*dto.CourierID)
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}
	payment, err := order.RestorePayment(dto.PaymentMethod, order.PaymentStatus(dto.PaymentStatus))
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, items, total, dto.DeliveryAddress, payment, status, courierID,
		dto.CreatedAt, dto.UpdatedAt, dto.Version,
	)
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	menuItemID, err := kernel.FromGoogleUUID(dto.MenuItemID)
	if err != nil {
		return order.LineItem{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(menuItemID, dto.Name, dto.Quantity, price)
}
