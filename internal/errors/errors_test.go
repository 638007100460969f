package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", Validation("creatorId is required"), http.StatusBadRequest, "VALIDATION_ERROR", "creatorId is required"},
		{"unauthorized", Unauthorized("Invalid credentials"), http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials"},
		{"not found", NotFound("Time slot not found"), http.StatusNotFound, "NOT_FOUND", "Time slot not found"},
		{"conflict", Conflict("Time slot is already booked"), http.StatusBadRequest, "CONFLICT", "Time slot is already booked"},
		{"wrapped kind", fmt.Errorf("book: %w", NotFound("Time slot not found")), http.StatusNotFound, "NOT_FOUND", "Time slot not found"},
		{
			"delivery",
			&DeliveryError{Recipient: "a@example.com", Err: errors.New("dial tcp: refused")},
			http.StatusInternalServerError, "DELIVERY_FAILED",
			"failed to send email to a@example.com: dial tcp: refused",
		},
		{"unknown", errors.New("db is down"), http.StatusInternalServerError, "INTERNAL_ERROR", "Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
		})
	}
}

func TestWrap_KeepsCauseAndKind(t *testing.T) {
	cause := errors.New("token expired")
	err := Wrap(ErrUnauthorized, "Not authorized, token failed", cause)

	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Not authorized, token failed: token expired", err.Error())
}

func TestDeliveryError_Unwrap(t *testing.T) {
	cause := errors.New("535 auth failed")
	err := fmt.Errorf("notify: %w", &DeliveryError{Recipient: "x@example.com", Err: cause})

	var de *DeliveryError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "x@example.com", de.Recipient)
	assert.True(t, errors.Is(err, ErrDelivery))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrValidation))
}
