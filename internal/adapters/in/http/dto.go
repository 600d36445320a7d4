package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
)

// Requests. NewOrderLine has no price field; any price sent is ignored.
type (
	NewOrderLine struct {
		MenuItemID kernel.UUID `json:"menuItemId"`
		Quantity   int         `json:"quantity"`
	}

	NewOrderRequest struct {
		Items           []NewOrderLine `json:"items"`
		DeliveryAddress string         `json:"deliveryAddress"`
		PaymentMethod   string         `json:"paymentMethod"`
	}

	StatusUpdateRequest struct {
		Status string `json:"status"`
	}

	NewCourierRequest struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}

	AssignmentRequest struct {
		CourierID kernel.UUID `json:"courierId"`
	}

	NewReviewRequest struct {
		OrderID    kernel.UUID `json:"orderId"`
		MenuItemID kernel.UUID `json:"menuItemId"`
		Rating     int         `json:"rating"`
		Comment    string      `json:"comment"`
	}
)

type OrderItemResponse struct {
	MenuItemID kernel.UUID `json:"menuItemId"`
	Name       string      `json:"name"`
	Quantity   int         `json:"quantity"`
	UnitPrice  string      `json:"unitPrice"`
}

type PaymentResponse struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

type OrderResponse struct {
	ID              kernel.UUID         `json:"id"`
	CustomerID      kernel.UUID         `json:"customerId"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     string              `json:"totalAmount"`
	DeliveryAddress string              `json:"deliveryAddress"`
	Payment         PaymentResponse     `json:"payment"`
	Status          string              `json:"status"`
	CourierID       *kernel.UUID        `json:"courierId"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func newOrderResponse(v queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, OrderItemResponse{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.StringFixed(2),
		})
	}
	return OrderResponse{
		ID:              v.ID,
		CustomerID:      v.CustomerID,
		Items:           items,
		TotalAmount:     v.Total.StringFixed(2),
		DeliveryAddress: v.DeliveryAddress,
		Payment:         PaymentResponse{Method: v.PaymentMethod, Status: v.PaymentStatus},
		Status:          v.Status,
		CourierID:       v.CourierID,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func newOrderResponses(views []queries.OrderView) []OrderResponse {
	out := make([]OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, newOrderResponse(v))
	}
	return out
}

type OpenOrderResponse struct {
	ID              kernel.UUID `json:"id"`
	DeliveryAddress string      `json:"deliveryAddress"`
	ItemsSummary    string      `json:"itemsSummary"`
	TotalAmount     string      `json:"totalAmount"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type ActiveDeliveryResponse struct {
	Active  bool           `json:"active"`
	Message string         `json:"message,omitempty"`
	Order   *OrderResponse `json:"order,omitempty"`
}

type CourierResponse struct {
	ID             kernel.UUID  `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Status         string       `json:"status"`
	CurrentOrderID *kernel.UUID `json:"currentOrderId"`
	CreatedAt      time.Time    `json:"createdAt"`
}

func newCourierResponse(v queries.CourierView) CourierResponse {
	return CourierResponse{
		ID:             v.ID,
		Name:           v.Name,
		Email:          v.Email,
		Phone:          v.Phone,
		Status:         v.Status,
		CurrentOrderID: v.CurrentOrderID,
		CreatedAt:      v.CreatedAt,
	}
}

type ReviewResponse struct {
	ID         kernel.UUID `json:"id"`
	UserID     kernel.UUID `json:"userId"`
	OrderID    kernel.UUID `json:"orderId"`
	MenuItemID kernel.UUID `json:"menuItemId"`
	Rating     int         `json:"rating"`
	Comment    string      `json:"comment"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func newReviewResponse(v queries.ReviewView) ReviewResponse {
	return ReviewResponse{
		ID:         v.ID,
		UserID:     v.CustomerID,
		OrderID:    v.OrderID,
		MenuItemID: v.MenuItemID,
		Rating:     v.Rating,
		Comment:    v.Comment,
		CreatedAt:  v.CreatedAt,
	}
}

type ItemReviewsResponse struct {
	MenuItemID    kernel.UUID      `json:"menuItemId"`
	Count         int              `json:"count"`
	AverageRating string           `json:"averageRating"`
	Reviews       []ReviewResponse `json:"reviews"`
}
