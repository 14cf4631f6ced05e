package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/container"
	"github.com/midwaymobile/storage-site/cmd/site/handlers"
	"github.com/midwaymobile/storage-site/cmd/site/middleware"
)

// RegisterApplicationRoutes registers the public careers form and its admin view
func RegisterApplicationRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewApplicationHandler(c.ApplicationService, c.Components.Logger)

	e.POST("/api/v1/public/applications", h.Submit,
		middleware.FormRateLimit(c.Limiter, "applications", c.Components.Config.RateLimit))

	admin := e.Group("/api/v1/admin/applications", middleware.RequireAdmin(c.AuthService))
	{
		admin.GET("", h.List)                    // GET /api/v1/admin/applications
		admin.PUT("/:id/status", h.UpdateStatus) // PUT /api/v1/admin/applications/:id/status
	}
}
