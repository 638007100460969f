package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"outlaw/internal/config"
	"outlaw/internal/logging"
)

// MailDiagnostics is the part of the notifier exercised by the diagnostic endpoints.
type MailDiagnostics interface {
	SendTestEmail(ctx context.Context, recipient string) (string, error)
	SendSimpleTestEmail(ctx context.Context, recipient string) (string, error)
	SendDebugEmail(ctx context.Context, recipient string) (string, error)
	Verify(ctx context.Context) error
}

// DiagnosticsHandler exposes mail diagnostics. It never reveals the full app password.
type DiagnosticsHandler struct {
	mail        MailDiagnostics
	cfg         config.MailConfig
	environment string
}

// NewDiagnosticsHandler creates a new diagnostics handler.
func NewDiagnosticsHandler(mail MailDiagnostics, cfg config.MailConfig, environment string) *DiagnosticsHandler {
	return &DiagnosticsHandler{mail: mail, cfg: cfg, environment: environment}
}

// TestEmailRequest names the diagnostic recipient.
type TestEmailRequest struct {
	Email string `json:"email" validate:"required"`
}

// MailEnvironment describes the mail configuration without secrets.
type MailEnvironment struct {
	EmailUser           string `json:"EMAIL_USER"`
	EmailPasswordMasked string `json:"EMAIL_APP_PASSWORD_MASKED"`
	EmailUserSet        bool   `json:"EMAIL_USER_SET"`
	EmailPasswordSet    bool   `json:"EMAIL_APP_PASSWORD_SET"`
	AppEnv              string `json:"APP_ENV"`
}

// StepResult is the outcome of one diagnostic step.
type StepResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// DiagnosticsResponse is returned by every diagnostic endpoint.
type DiagnosticsResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message,omitempty"`
	MessageID    string          `json:"messageId,omitempty"`
	Environment  MailEnvironment `json:"environment"`
	VerifyResult *StepResult     `json:"verifyResult,omitempty"`
	SendResult   *StepResult     `json:"sendResult,omitempty"`
}

func (h *DiagnosticsHandler) env() MailEnvironment {
	user := h.cfg.User
	if user == "" {
		user = "not set"
	}
	return MailEnvironment{
		EmailUser:           user,
		EmailPasswordMasked: h.cfg.MaskedPassword(),
		EmailUserSet:        h.cfg.User != "",
		EmailPasswordSet:    h.cfg.AppPassword != "",
		AppEnv:              h.environment,
	}
}

// TestEmail godoc
// @Summary Send an HTML test email
// @Tags diagnostics
// @Accept json
// @Produce json
// @Param request body TestEmailRequest true "Recipient"
// @Success 200 {object} DiagnosticsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/test-email [post]
func (h *DiagnosticsHandler) TestEmail(c echo.Context) error {
	var req TestEmailRequest
	if err := bind(c, &req, "Please provide an email address"); err != nil {
		return err
	}

	id, err := h.mail.SendTestEmail(c.Request().Context(), req.Email)
	if err != nil {
		return failDetailed(err)
	}

	return c.JSON(http.StatusOK, DiagnosticsResponse{
		Success:     true,
		Message:     fmt.Sprintf("Test email sent to %s", req.Email),
		MessageID:   id,
		Environment: h.env(),
	})
}

// SimpleTestEmail godoc
// @Summary Send a plain text test email
// @Tags diagnostics
// @Accept json
// @Produce json
// @Param request body TestEmailRequest true "Recipient"
// @Success 200 {object} DiagnosticsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/simple-test-email [post]
func (h *DiagnosticsHandler) SimpleTestEmail(c echo.Context) error {
	var req TestEmailRequest
	if err := bind(c, &req, "Please provide an email address"); err != nil {
		return err
	}

	id, err := h.mail.SendSimpleTestEmail(c.Request().Context(), req.Email)
	if err != nil {
		return failDetailed(err)
	}

	return c.JSON(http.StatusOK, DiagnosticsResponse{
		Success:     true,
		Message:     "Simple test email sent successfully",
		MessageID:   id,
		Environment: h.env(),
	})
}

// DebugEmail godoc
// @Summary Verify the mail server and send a debug email
// @Description Always answers 200 once the request is valid; each step reports its own outcome.
// @Tags diagnostics
// @Accept json
// @Produce json
// @Param request body TestEmailRequest true "Recipient"
// @Success 200 {object} DiagnosticsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /bookings/debug-email [post]
func (h *DiagnosticsHandler) DebugEmail(c echo.Context) error {
	var req TestEmailRequest
	if err := bind(c, &req, "Please provide an email address"); err != nil {
		return err
	}
	ctx := c.Request().Context()

	verify := &StepResult{Success: true}
	if err := h.mail.Verify(ctx); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("mail server verification failed")
		verify = &StepResult{Error: err.Error()}
	}

	send := &StepResult{Success: true}
	id, err := h.mail.SendDebugEmail(ctx, req.Email)
	if err != nil {
		send = &StepResult{Error: err.Error()}
	} else {
		send.MessageID = id
	}

	return c.JSON(http.StatusOK, DiagnosticsResponse{
		Success:      verify.Success && send.Success,
		Environment:  h.env(),
		VerifyResult: verify,
		SendResult:   send,
	})
}
