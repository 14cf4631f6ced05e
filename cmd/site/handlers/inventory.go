package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/common/logger"
)

// InventoryHandler handles admin inventory management
type InventoryHandler struct {
	inventory *service.InventoryService
	log       *logger.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventory *service.InventoryService, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
		log:       log,
	}
}

// Create adds a container to the inventory
// POST /api/v1/admin/inventory
func (h *InventoryHandler) Create(c echo.Context) error {
	var in service.InventoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.inventory.Create(c.Request().Context(), in)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// List returns every inventory item, including unavailable ones
// GET /api/v1/admin/inventory
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.inventory.List(c.Request().Context(), false)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"inventory": items,
	})
}

// Update replaces an item's listing details
// PUT /api/v1/admin/inventory/:id
func (h *InventoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var in service.InventoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.inventory.Update(c.Request().Context(), id, in)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, item)
}
