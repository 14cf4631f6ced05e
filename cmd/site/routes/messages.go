package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/container"
	"github.com/midwaymobile/storage-site/cmd/site/handlers"
	"github.com/midwaymobile/storage-site/cmd/site/middleware"
)

// RegisterMessageRoutes registers the public contact form and its admin view
func RegisterMessageRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewMessageHandler(c.MessageService, c.Components.Logger)

	e.POST("/api/v1/public/messages", h.Submit,
		middleware.FormRateLimit(c.Limiter, "messages", c.Components.Config.RateLimit))

	admin := e.Group("/api/v1/admin/messages", middleware.RequireAdmin(c.AuthService))
	{
		admin.GET("", h.List)                // GET /api/v1/admin/messages
		admin.PUT("/:id/read", h.MarkRead)   // PUT /api/v1/admin/messages/:id/read
	}
}
