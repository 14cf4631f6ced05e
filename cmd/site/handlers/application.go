package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/models"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/common/logger"
)

// ApplicationHandler handles careers-page job applications
type ApplicationHandler struct {
	applications *service.ApplicationService
	log          *logger.Logger
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applications *service.ApplicationService, log *logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		log:          log,
	}
}

// Submit accepts a public job application
// POST /api/v1/public/applications
func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req service.ApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	application, err := h.applications.Submit(c.Request().Context(), req)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusCreated, application)
}

// List returns all job applications
// GET /api/v1/admin/applications
func (h *ApplicationHandler) List(c echo.Context) error {
	applications, err := h.applications.List(c.Request().Context())
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"applications": applications,
	})
}

type applicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

// UpdateStatus moves an application through the hiring pipeline
// PUT /api/v1/admin/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}

	var req applicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	application, err := h.applications.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, application)
}
