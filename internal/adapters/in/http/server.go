package http

import (
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/pkg/metrics"

	"go.uber.org/zap"
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Commands
	CreateOrder      commands.CreateOrderCommandHandler
	SetOrderStatus   commands.SetOrderStatusCommandHandler
	RegisterCourier  commands.RegisterCourierCommandHandler
	AssignDelivery   commands.AssignDeliveryCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	MarkDelivered    commands.MarkDeliveredCommandHandler
	AddReview        commands.AddReviewCommandHandler

	// Queries
	GetOrder           queries.GetOrderQueryHandler
	ListCustomerOrders queries.ListCustomerOrdersQueryHandler
	ListAllOrders      queries.ListAllOrdersQueryHandler
	ListOpenOrders     queries.ListOpenOrdersQueryHandler
	GetActiveDelivery  queries.GetActiveDeliveryQueryHandler
	ListCouriers       queries.ListCouriersQueryHandler
	ListItemReviews    queries.ListItemReviewsQueryHandler
}

// Server translates HTTP requests into commands and queries and maps their
// results back to JSON.
type Server struct {
	handlers Handlers
	log      *zap.Logger
	metrics  *metrics.Metrics
}

func NewServer(handlers Handlers, log *zap.Logger, m *metrics.Metrics) *Server {
	return &Server{
		handlers: handlers,
		log:      log,
		metrics:  m,
	}
}
