package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/container"
	"github.com/midwaymobile/storage-site/cmd/site/handlers"
	"github.com/midwaymobile/storage-site/cmd/site/middleware"
)

// RegisterAuthRoutes registers admin login and logout
func RegisterAuthRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewAuthHandler(c.AuthService, c.Components.Logger)

	auth := e.Group("/api/v1/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout, middleware.RequireAdmin(c.AuthService))
	}
}
