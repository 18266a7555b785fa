package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/restodash/restodash/internal/ports"
	"github.com/restodash/restodash/pkg/httpx"
)

type Handler struct {
	orders     ports.OrderService
	dashboards ports.DashboardService
	log        ports.Logger
}

func NewHandler(orders ports.OrderService, dashboards ports.DashboardService, log ports.Logger) *Handler {
	return &Handler{orders: orders, dashboards: dashboards, log: log}
}

// NewRouter wires all routes. otelServiceName enables the otelgin middleware
// when non-empty; pass "" when tracing is off.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/restaurants", h.createRestaurant)
	r.GET("/restaurants", h.listRestaurants)
	r.GET("/restaurants/:id", h.getRestaurant)
	r.DELETE("/restaurants/:id", h.deleteRestaurant)

	r.POST("/restaurants/:id/customers", h.createCustomer)
	r.GET("/restaurants/:id/customers", h.listCustomers)
	r.GET("/customers/:id", h.getCustomer)

	r.POST("/orders", h.createOrder)
	r.GET("/orders/:id", h.getOrder)
	r.GET("/restaurants/:id/orders", h.listOrders)

	r.GET("/restaurants/:id/dashboard", h.getDashboard)
	r.POST("/restaurants/:id/dashboard/refresh", h.refreshDashboard)

	return r
}
