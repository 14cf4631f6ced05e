package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/common/logger"
)

// OrderHandler handles container orders
type OrderHandler struct {
	orders *service.OrderService
	log    *logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *service.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		log:    log,
	}
}

// Place accepts a public order against an inventory item
// POST /api/v1/public/orders
func (h *OrderHandler) Place(c echo.Context) error {
	var req service.OrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	order, err := h.orders.Place(c.Request().Context(), req)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusCreated, order)
}

// List returns all orders
// GET /api/v1/admin/orders
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
	})
}

type orderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateStatus moves an order through fulfilment
// PUT /api/v1/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, order)
}
