package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/cmd/site/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// TokenKey is the context key for the verified bearer token
	TokenKey ContextKey = "admin_token"
)

// BearerToken extracts the token from the Authorization header,
// returning empty when absent or malformed
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequireAdmin rejects requests whose bearer token does not belong to
// a live admin session. The store itself performs no authorization
// checks; this middleware is the only gate in front of the admin API.
func RequireAdmin(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)
			if !auth.Verify(c.Request().Context(), token) {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error": "authentication required",
				})
			}

			c.Set(string(TokenKey), token)
			return next(c)
		}
	}
}

// GetToken retrieves the verified token from the request context
// Returns empty string if not set
func GetToken(c echo.Context) string {
	token := c.Get(string(TokenKey))
	if token == nil {
		return ""
	}
	return token.(string)
}
