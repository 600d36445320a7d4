package queries

import (
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"

	"github.com/shopspring/decimal"
)

type OrderItemView struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
}

// OrderView is the full order as shown to its owner and to staff.
type OrderView struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Items           []OrderItemView
	Total           decimal.Decimal
	DeliveryAddress string
	PaymentMethod   string
	PaymentStatus   string
	Status          string
	CourierID       *kernel.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewOrderView(o *order.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemView{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
		})
	}
	return OrderView{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		Items:           items,
		Total:           o.Total().Decimal(),
		DeliveryAddress: o.DeliveryAddress(),
		PaymentMethod:   o.Payment().Method(),
		PaymentStatus:   string(o.Payment().Status()),
		Status:          o.Status().String(),
		CourierID:       o.Courier(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}

// OpenOrderView is what a courier sees while choosing an order to accept.
type OpenOrderView struct {
	ID              kernel.UUID
	DeliveryAddress string
	ItemsSummary    string
	Total           decimal.Decimal
	CreatedAt       time.Time
}

func newOpenOrderView(o *order.Order) OpenOrderView {
	parts := make([]string, 0, len(o.Items()))
	for _, item := range o.Items() {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity(), item.Name()))
	}
	return OpenOrderView{
		ID:              o.ID(),
		DeliveryAddress: o.DeliveryAddress(),
		ItemsSummary:    strings.Join(parts, ", "),
		Total:           o.Total().Decimal(),
		CreatedAt:       o.CreatedAt(),
	}
}

// CourierView never exposes the password hash.
type CourierView struct {
	ID             kernel.UUID
	Name           string
	Email          string
	Phone          string
	Status         string
	CurrentOrderID *kernel.UUID
	CreatedAt      time.Time
}

func NewCourierView(c *courier.Courier) CourierView {
	return CourierView{
		ID:             c.ID(),
		Name:           c.Name(),
		Email:          c.Email(),
		Phone:          c.Phone(),
		Status:         c.Status().String(),
		CurrentOrderID: c.CurrentOrder(),
		CreatedAt:      c.CreatedAt(),
	}
}

type ReviewView struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	OrderID    kernel.UUID
	MenuItemID kernel.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

func NewReviewView(r *review.Review) ReviewView {
	return ReviewView{
		ID:         r.ID(),
		CustomerID: r.CustomerID(),
		OrderID:    r.OrderID(),
		MenuItemID: r.MenuItemID(),
		Rating:     r.Rating(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
	}
}
