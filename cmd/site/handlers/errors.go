package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/mediastore"
	"github.com/midwaymobile/storage-site/cmd/site/service"
	"github.com/midwaymobile/storage-site/cmd/site/store"
	"github.com/midwaymobile/storage-site/common/logger"
)

// httpError maps service and store errors onto HTTP statuses:
// not-found -> 404, validation -> 400, bad credentials -> 401,
// anything else -> 500
func httpError(log *logger.Logger, err error) error {
	var validationErr *service.ValidationError
	var mediaValidationErr *mediastore.ValidationError

	switch {
	case errors.Is(err, store.ErrNotFound) || errors.Is(err, mediastore.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &validationErr) || errors.As(err, &mediaValidationErr):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	default:
		log.Error("request failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
