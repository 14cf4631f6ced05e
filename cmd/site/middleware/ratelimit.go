package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/midwaymobile/storage-site/common/config"
	"github.com/midwaymobile/storage-site/common/ratelimit"
)

// FormRateLimit throttles a public form route per client IP. A nil
// limiter (Redis unreachable or limiting disabled) lets everything
// through; a failed check also fails open for availability.
func FormRateLimit(limiter *ratelimit.Limiter, form string, cfg config.RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil || !cfg.Enabled {
				return next(c)
			}

			result, err := limiter.CheckFormLimit(
				c.Request().Context(),
				form,
				c.RealIP(),
				cfg.Limit,
				cfg.WindowSec,
			)
			if err != nil {
				// On error, allow request (fail open for availability)
				return next(c)
			}

			if !result.Allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":               "rate_limit_exceeded",
					"message":             "Too many submissions. Please try again later.",
					"retry_after_seconds": result.RetryAfterSeconds,
				})
			}

			return next(c)
		}
	}
}
