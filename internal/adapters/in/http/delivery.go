package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// RegisterCourier handles POST /api/v1/delivery/couriers.
func (s *Server) RegisterCourier(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	var req NewCourierRequest
	if err = bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewRegisterCourierCommand(actor, req.Name, req.Email, req.Phone, req.Password, req.ConfirmPassword)
	if err != nil {
		return s.writeError(c, err)
	}

	registered, err := s.handlers.RegisterCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, newCourierResponse(queries.NewCourierView(registered)))
}

// ListCouriers handles GET /api/v1/delivery/couriers[?available=true].
func (s *Server) ListCouriers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	availableOnly, err := queryBool(c, "available")
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewListCouriersQuery(actor, availableOnly)
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.handlers.ListCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	out := make([]CourierResponse, 0, len(views))
	for _, v := range views {
		out = append(out, newCourierResponse(v))
	}
	return c.JSON(http.StatusOK, out)
}

// AssignDelivery handles POST /api/v1/delivery/assign/{orderId}.
func (s *Server) AssignDelivery(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}
	var req AssignmentRequest
	if err = bindBody(c, &req); err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewAssignDeliveryCommand(actor, orderID, req.CourierID)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.handlers.AssignDelivery.Handle(c.Request().Context(), cmd)
	return s.deliveryResult(c, "assign", o, err)
}

// CompleteDelivery handles POST /api/v1/delivery/complete/{orderId}.
func (s *Server) CompleteDelivery(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewCompleteDeliveryCommand(actor, orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.handlers.CompleteDelivery.Handle(c.Request().Context(), cmd)
	return s.deliveryResult(c, "complete", o, err)
}

// ListPendingOrders handles GET /api/v1/delivery/pending-orders.
func (s *Server) ListPendingOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewListOpenOrdersQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.handlers.ListOpenOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	out := make([]OpenOrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, OpenOrderResponse{
			ID:              v.ID,
			DeliveryAddress: v.DeliveryAddress,
			ItemsSummary:    v.ItemsSummary,
			TotalAmount:     v.Total.StringFixed(2),
			CreatedAt:       v.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GetMyActiveOrder handles GET /api/v1/delivery/my-active-order.
func (s *Server) GetMyActiveOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewGetActiveDeliveryQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	active, err := s.handlers.GetActiveDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	if !active.Active {
		return c.JSON(http.StatusOK, ActiveDeliveryResponse{Active: false, Message: "no active delivery"})
	}
	res := newOrderResponse(*active.Order)
	return c.JSON(http.StatusOK, ActiveDeliveryResponse{Active: true, Order: &res})
}

// AcceptOrder handles POST /api/v1/delivery/accept/{orderId}.
func (s *Server) AcceptOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewAcceptOrderCommand(actor, orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.handlers.AcceptOrder.Handle(c.Request().Context(), cmd)
	return s.deliveryResult(c, "accept", o, err)
}

// MarkDelivered handles POST /api/v1/delivery/mark-delivered/{orderId}.
func (s *Server) MarkDelivered(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.writeError(c, err)
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewMarkDeliveredCommand(actor, orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.handlers.MarkDelivered.Handle(c.Request().Context(), cmd)
	return s.deliveryResult(c, "mark_delivered", o, err)
}

func (s *Server) deliveryResult(c echo.Context, operation string, o *order.Order, err error) error {
	s.metrics.ObserveDelivery(operation, deliveryOutcome(err))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponse(queries.NewOrderView(o)))
}

func deliveryOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, courier.ErrAlreadyActive),
		errors.Is(err, courier.ErrCourierUnavailable),
		errors.Is(err, courier.ErrNotOwner):
		return metrics.OutcomeConflict
	case errs.IsValidation(err),
		errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrAccessDenied):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
