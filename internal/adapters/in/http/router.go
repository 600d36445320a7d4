package http

import (
	"net/http"

	"foodorder/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the request guards shared by the API routes.
type RouterConfig struct {
	Verifier     *TokenVerifier
	ClaimLimiter *RateLimiter
	Validator    *RequestValidator
}

// NewRouter builds the echo instance serving /api/v1 together with the
// health, metrics and documentation endpoints.
func NewRouter(s *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		middleware.RequestID(),
		RequestLogger(s.log),
		Metrics(s.metrics),
		middleware.Recover(),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.OpenAPI)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	authed := []echo.MiddlewareFunc{cfg.Verifier.Authenticate, cfg.Validator.Middleware}
	limited := append(authed[:len(authed):len(authed)], cfg.ClaimLimiter.Middleware)

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder, authed...)
	v1.GET("/orders", s.ListMyOrders, authed...)
	v1.GET("/orders/all", s.ListAllOrders, authed...)
	v1.GET("/orders/:orderId", s.GetOrder, authed...)
	v1.PUT("/orders/:orderId/status", s.SetOrderStatus, authed...)

	v1.POST("/delivery/couriers", s.RegisterCourier, authed...)
	v1.GET("/delivery/couriers", s.ListCouriers, authed...)
	v1.POST("/delivery/assign/:orderId", s.AssignDelivery, authed...)
	v1.POST("/delivery/complete/:orderId", s.CompleteDelivery, authed...)
	v1.GET("/delivery/pending-orders", s.ListPendingOrders, authed...)
	v1.GET("/delivery/my-active-order", s.GetMyActiveOrder, authed...)
	v1.POST("/delivery/accept/:orderId", s.AcceptOrder, limited...)
	v1.POST("/delivery/mark-delivered/:orderId", s.MarkDelivered, limited...)

	v1.POST("/reviews", s.AddReview, authed...)
	v1.GET("/reviews/:menuItemId", s.ListItemReviews, cfg.Validator.Middleware)

	return e
}
