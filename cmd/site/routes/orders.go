package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/container"
	"github.com/midwaymobile/storage-site/cmd/site/handlers"
	"github.com/midwaymobile/storage-site/cmd/site/middleware"
)

// RegisterOrderRoutes registers the public order form and its admin view
func RegisterOrderRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewOrderHandler(c.OrderService, c.Components.Logger)

	e.POST("/api/v1/public/orders", h.Place,
		middleware.FormRateLimit(c.Limiter, "orders", c.Components.Config.RateLimit))

	admin := e.Group("/api/v1/admin/orders", middleware.RequireAdmin(c.AuthService))
	{
		admin.GET("", h.List)                    // GET /api/v1/admin/orders
		admin.PUT("/:id/status", h.UpdateStatus) // PUT /api/v1/admin/orders/:id/status
	}
}
