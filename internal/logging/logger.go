// Package logging provides the process-wide zerolog logger.
//
// Call Init once from main; before that a JSON logger at info level writes to stderr.
//
//	logging.Info().Str("slot_id", id).Msg("slot booked")
//	logging.Ctx(ctx).Error().Err(err).Msg("send failed")
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: debug, info, warn, error. Default info.
	Level string

	// Format is json or console. Default json.
	Format string

	// Output defaults to os.Stderr.
	Output io.Writer
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	initLogger(Config{})
}

// Init configures the global logger. Safe to call more than once.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

// must be called with mu held (or from init)
func initLogger(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	output := cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	log = zerolog.New(output).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug starts a debug level event.
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

// Info starts an info level event.
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn starts a warn level event.
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error starts an error level event.
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Fatal starts a fatal level event; the process exits after Msg.
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}

type ctxKey struct{}

// ContextWithRequestID stores the HTTP request id for later log lines.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestIDFromContext returns the request id or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// Ctx returns the global logger annotated with the request id carried by ctx.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	if id := RequestIDFromContext(ctx); id != "" {
		l = l.With().Str("request_id", id).Logger()
	}
	return &l
}
