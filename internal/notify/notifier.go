// Package notify renders and sends the service's transactional emails.
package notify

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/sony/gobreaker/v2"

	apperrors "outlaw/internal/errors"
	"outlaw/internal/logging"
)

const (
	breakerThreshold = 5
	breakerTimeout   = 30 * time.Second
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether addr looks like a deliverable address.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// BookingDetails describes the slot an email is about. The flags pick the wording.
type BookingDetails struct {
	Date           time.Time
	StartTime      string
	EndTime        string
	Questions      []string
	IsCreator      bool
	IsCancellation bool
	IsSME          bool
}

// SurveyDetails describes a freshly generated survey.
type SurveyDetails struct {
	Title     string
	Questions []string
	CreatedAt time.Time
}

// Options configures sender identity and diagnostic content.
type Options struct {
	FromName    string
	FromAddress string
	Environment string
	ServerURL   string
}

// Notifier sends templated emails through a Transport guarded by a circuit breaker.
// A Notifier built with a nil Transport rejects every send.
type Notifier struct {
	transport Transport
	opts      Options
	breaker   *gobreaker.CircuitBreaker[string]
	now       func() time.Time
}

// NewNotifier creates a notifier. transport may be nil when mail is not configured.
func NewNotifier(transport Transport, opts Options) *Notifier {
	n := &Notifier{
		transport: transport,
		opts:      opts,
		now:       time.Now,
	}
	n.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:         "smtp",
		Timeout:      breakerTimeout,
		IsSuccessful: serverHealthy,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("mail circuit breaker state changed")
		},
	})
	return n
}

// serverHealthy tells the breaker which send errors say nothing about the mail server:
// a refused mailbox or a caller that went away. Dial, TLS and auth failures still count.
func serverHealthy(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var rejected *RejectedRecipientError
	return errors.As(err, &rejected)
}

// Ready reports whether a transport was configured.
func (n *Notifier) Ready() bool {
	return n != nil && n.transport != nil
}

func (n *Notifier) check(recipient string) error {
	if !n.Ready() {
		return apperrors.Validation("email transporter not initialized")
	}
	if recipient == "" || !ValidEmail(recipient) {
		return apperrors.Validation("invalid recipient email address")
	}
	return nil
}

// SendBookingConfirmation sends the booking, booked-slot or cancellation email and returns its Message-ID.
func (n *Notifier) SendBookingConfirmation(ctx context.Context, recipient string, d BookingDetails) (string, error) {
	if err := n.check(recipient); err != nil {
		return "", err
	}
	if d.Date.IsZero() || d.StartTime == "" || d.EndTime == "" {
		return "", apperrors.Validation("missing required booking details (date, startTime, or endTime)")
	}

	subject, v := bookingView(d)
	html, text, err := render(v)
	if err != nil {
		return "", err
	}
	return n.send(ctx, recipient, subject, html, text)
}

// SendSurveyCreationConfirmation sends the generated questions to the survey creator.
func (n *Notifier) SendSurveyCreationConfirmation(ctx context.Context, recipient string, d SurveyDetails) (string, error) {
	if err := n.check(recipient); err != nil {
		return "", err
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = n.now()
	}

	html, text, err := render(surveyView(d))
	if err != nil {
		return "", err
	}
	return n.send(ctx, recipient, "Your AI-Generated Survey is Ready", html, text)
}

// SendTestEmail sends an HTML diagnostic email describing the running environment.
func (n *Notifier) SendTestEmail(ctx context.Context, recipient string) (string, error) {
	if err := n.check(recipient); err != nil {
		return "", err
	}

	env := n.opts.Environment
	if env == "" {
		env = "development"
	}
	server := n.opts.ServerURL
	if server == "" {
		server = "localhost"
	}

	html, text, err := render(testView(env, server, n.now().UTC().Format(time.RFC1123)))
	if err != nil {
		return "", err
	}
	return n.send(ctx, recipient, "Test Email from Outlaw Survey App", html, text)
}

// SendSimpleTestEmail sends a plain text message with no templating.
func (n *Notifier) SendSimpleTestEmail(ctx context.Context, recipient string) (string, error) {
	if err := n.check(recipient); err != nil {
		return "", err
	}
	return n.send(ctx, recipient, "Simple Test Email from Outlaw", "",
		"This is a simple test email. If you can read this, email functionality is working correctly.")
}

// SendDebugEmail sends the plain text message used by the mail diagnostics endpoint.
func (n *Notifier) SendDebugEmail(ctx context.Context, recipient string) (string, error) {
	if err := n.check(recipient); err != nil {
		return "", err
	}
	return n.send(ctx, recipient, "Debug Test Email", "", "This is a simple plain text debug email.")
}

// Verify checks that the mail server accepts our credentials.
func (n *Notifier) Verify(ctx context.Context) error {
	if !n.Ready() {
		return apperrors.Validation("email transporter not initialized")
	}
	return n.transport.Verify(ctx)
}

func (n *Notifier) send(ctx context.Context, recipient, subject, html, text string) (string, error) {
	msg := &Message{
		FromName:  n.opts.FromName,
		From:      n.opts.FromAddress,
		To:        recipient,
		Subject:   subject,
		HTML:      html,
		Text:      text,
		MessageID: newMessageID(n.opts.FromAddress),
		Date:      n.now(),
	}

	id, err := n.breaker.Execute(func() (string, error) {
		if err := n.transport.Send(ctx, msg); err != nil {
			return "", err
		}
		return msg.MessageID, nil
	})
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("recipient", recipient).Str("subject", subject).Msg("email send failed")
		return "", &apperrors.DeliveryError{Recipient: recipient, Err: err}
	}

	logging.Ctx(ctx).Info().Str("recipient", recipient).Str("message_id", id).Msg("email sent")
	return id, nil
}
