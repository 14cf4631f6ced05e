package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/container"
	"github.com/midwaymobile/storage-site/cmd/site/handlers"
	"github.com/midwaymobile/storage-site/cmd/site/middleware"
)

// RegisterQuoteRoutes registers the public quote form and its admin view
func RegisterQuoteRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewQuoteHandler(c.QuoteService, c.Components.Logger)

	e.POST("/api/v1/public/quotes", h.Submit,
		middleware.FormRateLimit(c.Limiter, "quotes", c.Components.Config.RateLimit))

	admin := e.Group("/api/v1/admin/quotes", middleware.RequireAdmin(c.AuthService))
	{
		admin.GET("", h.List)                    // GET /api/v1/admin/quotes
		admin.PUT("/:id/status", h.UpdateStatus) // PUT /api/v1/admin/quotes/:id/status
	}
}
