package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/middleware"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/common/logger"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	auth *service.AuthService
	log  *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login issues a bearer token for valid admin credentials
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
	})
}

// Logout revokes the caller's bearer token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.GetToken(c)
	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return httpError(h.log, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "logged_out",
	})
}
