package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation is returned when input is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized is returned when credentials or tokens are rejected.
	ErrUnauthorized = errors.New("not authorized")
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an operation does not fit the current state.
	ErrConflict = errors.New("conflict")
	// ErrDelivery is returned when an email could not be handed to the mail server.
	ErrDelivery = errors.New("email delivery failed")
)

// Error is a domain error carrying one of the sentinel kinds above.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// Validation returns an ErrValidation kind error.
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// Unauthorized returns an ErrUnauthorized kind error.
func Unauthorized(msg string) error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

// NotFound returns an ErrNotFound kind error.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Conflict returns an ErrConflict kind error.
func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind error, msg string, cause error) error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// DeliveryError reports a transport failure for a single recipient.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to send email to %s: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() []error {
	return []error{ErrDelivery, e.Err}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Anything without a known kind becomes a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	var de *Error
	msg := ""
	if errors.As(err, &de) {
		msg = de.Message
	}

	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, msg, "VALIDATION_ERROR")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, msg, "UNAUTHORIZED")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, msg, "NOT_FOUND")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusBadRequest, msg, "CONFLICT")
	case errors.Is(err, ErrDelivery):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "DELIVERY_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server Error", "INTERNAL_ERROR")
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
