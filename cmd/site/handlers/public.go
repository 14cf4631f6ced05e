package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/common/logger"
)

// PublicHandler serves the unauthenticated site projections
type PublicHandler struct {
	media     *service.MediaService
	inventory *service.InventoryService
	log       *logger.Logger
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(media *service.MediaService, inventory *service.InventoryService, log *logger.Logger) *PublicHandler {
	return &PublicHandler{
		media:     media,
		inventory: inventory,
		log:       log,
	}
}

// GetSiteMedia returns the active logo, hero and per-service media
// URLs the public pages render
// GET /api/v1/public/site
func (h *PublicHandler) GetSiteMedia(c echo.Context) error {
	return c.JSON(http.StatusOK, h.media.SiteMedia())
}

// ListInventory returns available containers only
// GET /api/v1/public/inventory
func (h *PublicHandler) ListInventory(c echo.Context) error {
	items, err := h.inventory.List(c.Request().Context(), true)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"inventory": items,
	})
}
