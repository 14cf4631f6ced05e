package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/common/logger"
)

// QuoteHandler handles quote request operations
type QuoteHandler struct {
	quotes *service.QuoteService
	log    *logger.Logger
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quotes *service.QuoteService, log *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		quotes: quotes,
		log:    log,
	}
}

// Submit accepts a public quote form submission
// POST /api/v1/public/quotes
func (h *QuoteHandler) Submit(c echo.Context) error {
	var req service.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	quote, err := h.quotes.Submit(c.Request().Context(), req)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusCreated, quote)
}

// List returns all quote requests
// GET /api/v1/admin/quotes
func (h *QuoteHandler) List(c echo.Context) error {
	quotes, err := h.quotes.List(c.Request().Context())
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"quotes": quotes,
	})
}

type quoteStatusRequest struct {
	Status models.QuoteStatus `json:"status"`
}

// UpdateStatus moves a quote through the follow-up pipeline
// PUT /api/v1/admin/quotes/:id/status
func (h *QuoteHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid quote id")
	}

	var req quoteStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	quote, err := h.quotes.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, quote)
}
