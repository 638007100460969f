package middleware

import (
	"github.com/labstack/echo/v4"

	"outlaw/internal/logging"
)

// RequestContext copies the request id set by echo's RequestID middleware into the
// request context so service-level log lines carry it.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if id != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(logging.ContextWithRequestID(req.Context(), id)))
			}
			return next(c)
		}
	}
}
