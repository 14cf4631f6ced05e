package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/container"
	"github.com/midwaymobile/storage-site/cmd/site/handlers"
	"github.com/midwaymobile/storage-site/cmd/site/middleware"
)

// RegisterMediaRoutes registers public file serving and the
// authenticated media management endpoints
func RegisterMediaRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewMediaHandler(c.MediaService, c.Components.Logger)

	// Stored bytes are public: the site renders them without credentials
	e.GET("/api/v1/media/file/:id", h.GetFile)

	admin := e.Group("/api/v1/admin/media", middleware.RequireAdmin(c.AuthService))
	{
		admin.GET("", h.List)             // GET /api/v1/admin/media?tag=logo
		admin.POST("", h.Upload)          // POST /api/v1/admin/media
		admin.PUT("/:id/tags", h.SetTags) // PUT /api/v1/admin/media/:id/tags
		admin.DELETE("/:id", h.Delete)    // DELETE /api/v1/admin/media/:id
	}
}
