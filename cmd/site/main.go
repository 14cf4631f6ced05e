package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/midwaymobile/storage-site/cmd/site/container"
	"github.com/midwaymobile/storage-site/cmd/site/repository"
	"github.com/midwaymobile/storage-site/cmd/site/routes"
	"github.com/midwaymobile/storage-site/common/bootstrap"
	"github.com/midwaymobile/storage-site/common/db"
	"github.com/midwaymobile/storage-site/common/server"
)

func main() {
	ctx := context.Background()

	// Bootstrap common components (config, logger, optional DB)
	components, err := bootstrap.Setup(ctx, "site",
		bootstrap.WithDBInitHook(func(database *db.DB) error {
			return repository.Migrate(database)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap site: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	// Initialize service container (singleton pattern - all services created once)
	serviceContainer, err := container.NewContainer(components)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize service container: %v\n", err)
		os.Exit(1)
	}

	// Initialize Echo server
	e := setupEcho(serviceContainer)

	// Setup health check
	setupHealthCheck(e, serviceContainer)

	// Register all routes
	registerRoutes(e, serviceContainer)

	// Start server with graceful shutdown
	srv := server.New("site", components.Config.Service.Port, e, components.Logger)
	if err := srv.Start(); err != nil {
		components.Logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// setupEcho initializes the Echo server with middleware
func setupEcho(c *container.Container) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: c.Components.Config.Service.CORSOrigins,
	}))
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", c.Components.Config.Uploads.MaxUploadMB)))

	return e
}

// setupHealthCheck registers the health check endpoint
func setupHealthCheck(e *echo.Echo, c *container.Container) {
	e.GET("/health", func(ctx echo.Context) error {
		status := map[string]string{
			"status":  "ok",
			"service": "site",
		}

		if c.Components.DB == nil {
			status["database"] = "degraded"
		} else if err := c.Components.DB.Health(ctx.Request().Context()); err != nil {
			status["database"] = "unhealthy"
		} else {
			status["database"] = "ok"
		}

		return ctx.JSON(http.StatusOK, status)
	})
}

// registerRoutes registers all application routes using the service container
func registerRoutes(e *echo.Echo, c *container.Container) {
	routes.RegisterAuthRoutes(e, c)
	routes.RegisterPublicRoutes(e, c)
	routes.RegisterMediaRoutes(e, c)
	routes.RegisterQuoteRoutes(e, c)
	routes.RegisterMessageRoutes(e, c)
	routes.RegisterInventoryRoutes(e, c)
	routes.RegisterApplicationRoutes(e, c)
	routes.RegisterOrderRoutes(e, c)
}
