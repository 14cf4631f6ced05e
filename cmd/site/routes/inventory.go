package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/container"
	"github.com/midwaymobile/storage-site/cmd/site/handlers"
	"github.com/midwaymobile/storage-site/cmd/site/middleware"
)

// RegisterInventoryRoutes registers admin inventory management
// (the public listing lives under the public routes)
func RegisterInventoryRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewInventoryHandler(c.InventoryService, c.Components.Logger)

	admin := e.Group("/api/v1/admin/inventory", middleware.RequireAdmin(c.AuthService))
	{
		admin.GET("", h.List)       // GET /api/v1/admin/inventory
		admin.POST("", h.Create)    // POST /api/v1/admin/inventory
		admin.PUT("/:id", h.Update) // PUT /api/v1/admin/inventory/:id
	}
}
