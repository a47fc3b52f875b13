package middlewares

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/babel"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/logger"
)

type localeKey struct{}

type timezoneKey struct{}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Locale   Extractor
	Timezone Extractor
	// Allowed lists the locales a request may select. Default: the
	// configured languages, or the locales with catalogs when none are
	// configured. The default locale is always allowed.
	Allowed []string
	Logger  *slog.Logger
	// ContentLanguage sets the Content-Language response header to the
	// selected locale.
	ContentLanguage bool
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleSources sets the sources tried for the request locale.
func WithLocaleSources(sources ...Source) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Locale = NewExtractor(sources...)
	}
}

// WithTimezoneSources sets the sources tried for the request timezone.
func WithTimezoneSources(sources ...Source) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Timezone = NewExtractor(sources...)
	}
}

// WithAllowedLocales sets the locales a request may select.
func WithAllowedLocales(locales ...string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Allowed = locales
	}
}

// WithLocaleLogger sets the logger used to report rejected values.
func WithLocaleLogger(l *slog.Logger) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Logger = l
	}
}

// WithContentLanguage enables the Content-Language response header.
func WithContentLanguage() LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.ContentLanguage = true
	}
}

// Locale returns middleware that picks the locale and timezone of each
// request and stores them in the request context, where LocaleSelector and
// TimezoneSelector find them.
//
// Default locale sources: ?lang=, the "lang" cookie, Accept-Language.
// Default timezone sources: the "tz" cookie, the X-Timezone header.
// A locale that is not allowed is narrowed to its language ("de_AT" to
// "de") when that is allowed. Values that do not parse or are not allowed
// are ignored, so the Babel defaults apply.
func Locale(b *babel.Babel, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{
		Locale: NewExtractor(
			FromQuery("lang"),
			FromCookie("lang"),
			FromAcceptLanguage(b),
		),
		Timezone: NewExtractor(
			FromCookie("tz"),
			FromHeader("X-Timezone"),
		),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	log := logger.Default(cfg.Logger)
	allowed := allowedLocales(b, cfg.Allowed)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if v, ok := cfg.Locale.Extract(r); ok {
				if l, err := matchLocale(v, allowed); err == nil {
					ctx = context.WithValue(ctx, localeKey{}, l.String())
					if cfg.ContentLanguage {
						w.Header().Set("Content-Language", l.Tag().String())
					}
				} else {
					log.DebugContext(ctx, "ignoring request locale", slog.String("value", v), slog.Any("error", err))
				}
			}

			if v, ok := cfg.Timezone.Extract(r); ok {
				if _, err := i18n.ParseTimezone(v); err == nil {
					ctx = context.WithValue(ctx, timezoneKey{}, v)
				} else {
					log.DebugContext(ctx, "ignoring request timezone", slog.String("value", v), slog.Any("error", err))
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// allowedLocales indexes the selectable locales by their gettext form.
func allowedLocales(b *babel.Babel, explicit []string) map[string]i18n.Locale {
	names := explicit
	if len(names) == 0 {
		names = b.Config().Languages
	}
	out := map[string]i18n.Locale{b.DefaultLocale().String(): b.DefaultLocale()}
	if len(names) == 0 {
		for _, l := range b.ListTranslations() {
			out[l.String()] = l
		}
		return out
	}
	for _, name := range names {
		if l, err := i18n.ParseLocale(name); err == nil {
			out[l.String()] = l
		}
	}
	return out
}

// matchLocale returns the most specific allowed form of v.
func matchLocale(v string, allowed map[string]i18n.Locale) (i18n.Locale, error) {
	l, err := i18n.ParseLocale(v)
	if err != nil {
		return i18n.Locale{}, err
	}
	for _, candidate := range l.Candidates() {
		if match, ok := allowed[candidate]; ok {
			return match, nil
		}
	}
	return i18n.Locale{}, fmt.Errorf("%w: %q is not available", i18n.ErrInvalidLocale, v)
}

// GetLocale returns the locale picked by the Locale middleware.
// Returns an empty string if the middleware is not used or nothing matched.
func GetLocale(ctx context.Context) string {
	v, _ := ctx.Value(localeKey{}).(string)
	return v
}

// GetTimezone returns the timezone picked by the Locale middleware.
// Returns an empty string if the middleware is not used or nothing matched.
func GetTimezone(ctx context.Context) string {
	v, _ := ctx.Value(timezoneKey{}).(string)
	return v
}

// LocaleSelector returns a selector reading the locale stored by the
// Locale middleware.
func LocaleSelector() babel.LocaleSelector {
	return babel.LocaleSelectorFunc(GetLocale)
}

// TimezoneSelector returns a selector reading the timezone stored by the
// Locale middleware.
func TimezoneSelector() babel.TimezoneSelector {
	return babel.TimezoneSelectorFunc(GetTimezone)
}

// RequestLocaleExtractor returns a log extractor adding the request locale.
// Use with logger.New for automatic locale in request logs.
func RequestLocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if l := GetLocale(ctx); l != "" {
			return slog.String("locale", l), true
		}
		return slog.Attr{}, false
	}
}
