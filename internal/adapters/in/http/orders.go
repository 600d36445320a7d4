package http

import (
	"net/http"

	"foodorder/internal/core/application/pricing"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. Prices come from the catalog only.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	var req NewOrderRequest
	if err = bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}

	lines := make([]pricing.Line, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, pricing.Line{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}
	cmd, err := commands.NewCreateOrderCommand(actor, lines, req.DeliveryAddress, req.PaymentMethod)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, newOrderResponse(queries.NewOrderView(o)))
}

// ListMyOrders handles GET /api/v1/orders.
func (s *Server) ListMyOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewListCustomerOrdersQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.handlers.ListCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponses(views))
}

// ListAllOrders handles GET /api/v1/orders/all.
func (s *Server) ListAllOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewListAllOrdersQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.handlers.ListAllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponses(views))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponse(view))
}

// SetOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) SetOrderStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}
	var req StatusUpdateRequest
	if err = bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewSetOrderStatusCommand(actor, orderID, status)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.handlers.SetOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponse(queries.NewOrderView(o)))
}
