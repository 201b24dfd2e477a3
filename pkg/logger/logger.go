// Package logger builds slog loggers for the service: JSON output to stdout,
// optional Sentry forwarding for warnings and errors, and context extractors
// that inject request-scoped attributes (such as request IDs) into every log
// entry.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// Config holds logger configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// SentryDSN enables forwarding of warnings and errors to Sentry.
	// Empty disables the integration (graceful fallback for local dev).
	SentryDSN string `env:"SENTRY_DSN"`

	// Environment tags Sentry events (e.g. production, staging).
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// New creates a JSON-formatted stdout logger with optional context extractors.
// When cfg.SentryDSN is set, warnings and errors are also forwarded to Sentry;
// errors create Sentry issues. Extractors are applied to both destinations.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})

	if cfg.SentryDSN == "" {
		return slog.New(newContextHandler(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		// Graceful degradation: stdout only if Sentry init fails.
		slog.New(stdout).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(newContextHandler(stdout, extractors...))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},                 // Errors create Issues in Sentry
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError}, // Logs stored for context/search
	}.NewSentryHandler(context.Background())

	combined := newMultiHandler(stdout, sentryHandler)
	return slog.New(newContextHandler(combined, extractors...))
}

// NewNop creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// parseLevel maps a level name to a slog.Level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
