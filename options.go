package babel

import (
	"log/slog"
	"maps"

	"github.com/dmitrymomot/babel/pkg/cache"
	"github.com/dmitrymomot/babel/pkg/i18n"
)

// Option configures a Babel instance. Options override Config.
type Option func(*Babel)

// WithLogger sets the logger. If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(b *Babel) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithDefaultLocale overrides Config.DefaultLocale.
func WithDefaultLocale(locale string) Option {
	return func(b *Babel) {
		if locale != "" {
			b.cfg.DefaultLocale = locale
		}
	}
}

// WithDefaultTimezone overrides Config.DefaultTimezone.
func WithDefaultTimezone(tz string) Option {
	return func(b *Babel) {
		if tz != "" {
			b.cfg.DefaultTimezone = tz
		}
	}
}

// WithDomain overrides Config.Domain.
func WithDomain(name string) Option {
	return func(b *Babel) {
		if name != "" {
			b.cfg.Domain = name
		}
	}
}

// WithTranslationDirectories overrides Config.TranslationDirectories.
func WithTranslationDirectories(dirs ...string) Option {
	return func(b *Babel) {
		if len(dirs) > 0 {
			b.cfg.TranslationDirectories = dirs
		}
	}
}

// WithLanguages overrides Config.Languages.
func WithLanguages(langs ...string) Option {
	return func(b *Babel) {
		b.cfg.Languages = langs
	}
}

// WithRoot overrides Config.Root.
func WithRoot(root string) Option {
	return func(b *Babel) {
		if root != "" {
			b.cfg.Root = root
		}
	}
}

// WithLocaleSelector registers the locale selector.
func WithLocaleSelector(s LocaleSelector) Option {
	return func(b *Babel) {
		b.localeSelector = s
	}
}

// WithTimezoneSelector registers the timezone selector.
func WithTimezoneSelector(s TimezoneSelector) Option {
	return func(b *Babel) {
		b.timezoneSelector = s
	}
}

// WithCatalogLoader replaces the catalog loader of every domain.
// Useful for embedded translations and for tests.
func WithCatalogLoader(l i18n.CatalogLoader) Option {
	return func(b *Babel) {
		if l != nil {
			b.loader = l
		}
	}
}

// WithCatalogCache replaces the translation cache shared by the domains.
func WithCatalogCache(c cache.Cache[*i18n.Catalog]) Option {
	return func(b *Babel) {
		if c != nil {
			b.cache = c
		}
	}
}

// WithDateFormats overrides entries of the named date format table.
//
// The keys "datetime", "date" and "time" hold the style used when no
// format is given. Keys like "date.short" replace a style with a Go layout.
//
// Example:
//
//	babel.WithDateFormats(map[string]string{
//	    "date":      "long",
//	    "date.short": "2006-01-02",
//	})
func WithDateFormats(formats map[string]string) Option {
	return func(b *Babel) {
		maps.Copy(b.dateFormats, formats)
	}
}
