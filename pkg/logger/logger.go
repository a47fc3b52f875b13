package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config describes how a logger is built.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" yaml:"level"`
	Format string `env:"LOG_FORMAT" envDefault:"json" yaml:"format"`

	// SentryDSN enables error reporting to Sentry when set.
	SentryDSN         string `env:"SENTRY_DSN" yaml:"sentry_dsn"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production" yaml:"sentry_environment"`

	// Output defaults to os.Stdout.
	Output io.Writer `env:"-" yaml:"-"`
}

// ParseLevel parses "debug", "info", "warn" or "error" (case-insensitive).
// An empty string yields slog.LevelInfo.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: invalid level %q: %w", s, err)
	}
	return level, nil
}

// New creates a logger from cfg with optional context extractors.
// Services log JSON, the command-line tool logs text. When a Sentry DSN is
// configured, warnings and errors are forwarded to Sentry as well; a failing
// Sentry setup degrades to local logging only.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatJSON:
		handler = slog.NewJSONHandler(out, opts)
	case FormatText:
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}

	if cfg.SentryDSN != "" {
		handler = withSentry(handler, cfg)
	}

	return slog.New(NewContextHandler(handler, extractors...)), nil
}

func withSentry(local slog.Handler, cfg Config) slog.Handler {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return local
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return newMultiHandler(local, sentryHandler)
}
