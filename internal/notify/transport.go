package notify

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"outlaw/internal/config"
)

const (
	implicitTLSPort = 465
	dialTimeout     = 30 * time.Second
)

// Transport hands rendered messages to a mail server.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
	Verify(ctx context.Context) error
}

// RejectedRecipientError is a permanent refusal of one recipient at RCPT TO.
// The server itself answered normally.
type RejectedRecipientError struct {
	Recipient string
	Err       error
}

func (e *RejectedRecipientError) Error() string {
	return fmt.Sprintf("recipient %s rejected: %v", e.Recipient, e.Err)
}

func (e *RejectedRecipientError) Unwrap() error {
	return e.Err
}

// rcptError classifies a RCPT TO failure. Codes 550-553 reject the mailbox, not the session.
func rcptError(recipient string, err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) && tpErr.Code >= 550 && tpErr.Code <= 553 {
		return &RejectedRecipientError{Recipient: recipient, Err: err}
	}
	return fmt.Errorf("failed to set recipient: %w", err)
}

// SMTPTransport delivers mail over an authenticated SMTP session. Each call opens
// its own connection so it can be shared between goroutines.
type SMTPTransport struct {
	host     string
	port     int
	user     string
	password string
	timeout  time.Duration
}

// NewSMTPTransport validates the mail settings and builds a transport from them.
func NewSMTPTransport(cfg config.MailConfig) (*SMTPTransport, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is not set")
	}
	if cfg.User == "" || cfg.AppPassword == "" {
		return nil, errors.New("smtp credentials are not set")
	}
	port := cfg.Port
	if port == 0 {
		port = implicitTLSPort
	}
	return &SMTPTransport{
		host:     cfg.Host,
		port:     port,
		user:     cfg.User,
		password: cfg.AppPassword,
		timeout:  dialTimeout,
	}, nil
}

// Sender is the envelope sender address.
func (t *SMTPTransport) Sender() string {
	return t.user
}

func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	body, err := msg.Bytes()
	if err != nil {
		return fmt.Errorf("render message: %w", err)
	}

	client, err := t.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return rcptError(msg.To, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to start message: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close message: %w", err)
	}

	// the server already accepted the message
	_ = client.Quit()
	return nil
}

// Verify connects and authenticates without sending anything.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	client, err := t.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()
	return client.Quit()
}

func (t *SMTPTransport) open(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(t.host, strconv.Itoa(t.port))
	tlsConfig := &tls.Config{
		ServerName: t.host,
		MinVersion: tls.VersionTLS12,
	}

	dialer := &net.Dialer{Timeout: t.timeout}
	var (
		conn net.Conn
		err  error
	)
	if t.port == implicitTLSPort {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsConfig}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(t.timeout))
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if t.port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				_ = client.Close()
				return nil, fmt.Errorf("failed to start TLS: %w", err)
			}
		}
	}

	if err := client.Auth(smtp.PlainAuth("", t.user, t.password, t.host)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("SMTP authentication failed: %w", err)
	}
	return client, nil
}
