package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/container"
	"github.com/midwaymobile/storage-site/cmd/site/handlers"
)

// RegisterPublicRoutes registers the unauthenticated site projections
func RegisterPublicRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewPublicHandler(c.MediaService, c.InventoryService, c.Components.Logger)

	public := e.Group("/api/v1/public")
	{
		public.GET("/site", h.GetSiteMedia)       // GET /api/v1/public/site
		public.GET("/inventory", h.ListInventory) // GET /api/v1/public/inventory
	}
}
