package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "outlaw/internal/errors"
)

// Envelope is the common response shape.
type Envelope struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func ok(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func list[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	return c.JSON(http.StatusOK, Envelope{Success: true, Count: &n, Data: items})
}

// fail converts a service error into an echo HTTP error carrying an ErrorResponse.
func fail(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// failDetailed is fail for diagnostic endpoints: server errors keep their full message.
func failDetailed(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		httpErr.Message = err.Error()
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// bind decodes and validates the request body. Validation failures are reported with msg.
func bind(c echo.Context, req interface{}, msg string) error {
	if err := c.Bind(req); err != nil {
		return fail(apperrors.Validation("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return fail(apperrors.Validation(msg))
	}
	return nil
}
