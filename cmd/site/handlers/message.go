package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/common/logger"
)

// MessageHandler handles contact-form operations
type MessageHandler struct {
	messages *service.MessageService
	log      *logger.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messages *service.MessageService, log *logger.Logger) *MessageHandler {
	return &MessageHandler{
		messages: messages,
		log:      log,
	}
}

// Submit accepts a public contact form submission
// POST /api/v1/public/messages
func (h *MessageHandler) Submit(c echo.Context) error {
	var req service.MessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	message, err := h.messages.Submit(c.Request().Context(), req)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusCreated, message)
}

// List returns all contact messages
// GET /api/v1/admin/messages
func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.messages.List(c.Request().Context())
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

// MarkRead flags a message as handled
// PUT /api/v1/admin/messages/:id/read
func (h *MessageHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid message id")
	}

	message, err := h.messages.MarkRead(c.Request().Context(), id)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, message)
}
