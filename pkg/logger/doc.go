// Package logger builds log/slog loggers for services and command-line tools.
//
// [New] creates a JSON or text logger from a [Config] that is usually read
// from the environment (LOG_LEVEL, LOG_FORMAT, SENTRY_DSN). Context
// extractors add request-scoped attributes to every record:
//
//	localeExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if l, ok := ctx.Value(localeKey{}).(string); ok {
//			return slog.String("locale", l), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log, err := logger.New(logger.Config{Level: "debug", Format: "text"}, localeExtractor)
//
// When SentryDSN is set, warnings and errors are also sent to Sentry. If the
// Sentry client cannot be initialized, logging continues locally.
//
// Packages that accept an optional *slog.Logger default to [NewNope].
package logger
