package babel

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrymomot/babel/pkg/cache"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/logger"
)

// LocaleSelector picks the locale of a request. An empty result means
// "use the default locale".
type LocaleSelector interface {
	SelectLocale(ctx context.Context) string
}

// LocaleSelectorFunc adapts a function to the LocaleSelector interface.
type LocaleSelectorFunc func(ctx context.Context) string

// SelectLocale calls f.
func (f LocaleSelectorFunc) SelectLocale(ctx context.Context) string { return f(ctx) }

// TimezoneSelector picks the timezone of a request. An empty result means
// "use the default timezone".
type TimezoneSelector interface {
	SelectTimezone(ctx context.Context) string
}

// TimezoneSelectorFunc adapts a function to the TimezoneSelector interface.
type TimezoneSelectorFunc func(ctx context.Context) string

// SelectTimezone calls f.
func (f TimezoneSelectorFunc) SelectTimezone(ctx context.Context) string { return f(ctx) }

// forcedLocaleKey is the context key of a locale set by ForceLocale.
type forcedLocaleKey struct{}

// Babel resolves the locale and timezone of each request and gives access
// to translations and locale-aware formatting.
// Babel is safe for concurrent use.
type Babel struct {
	cfg             Config
	defaultLocale   i18n.Locale
	defaultTimezone *time.Location
	dirs            []string

	mu               sync.RWMutex
	localeSelector   LocaleSelector
	timezoneSelector TimezoneSelector

	domain      *i18n.Domain
	cache       cache.Cache[*i18n.Catalog]
	loader      i18n.CatalogLoader
	dateFormats map[string]string
	logger      *slog.Logger
}

// New creates a Babel instance from cfg and options. It fails when the
// default locale or timezone cannot be parsed.
//
// Example:
//
//	b, err := babel.New(babel.DefaultConfig(),
//	    babel.WithTranslationDirectories("translations"),
//	    babel.WithLocaleSelector(middlewares.LocaleSelector()),
//	)
func New(cfg Config, opts ...Option) (*Babel, error) {
	b := &Babel{
		cfg: cfg,
		dateFormats: map[string]string{
			"datetime": i18n.StyleMedium,
			"date":     i18n.StyleMedium,
			"time":     i18n.StyleMedium,
		},
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(b)
	}

	defaults := DefaultConfig()
	if b.cfg.DefaultLocale == "" {
		b.cfg.DefaultLocale = defaults.DefaultLocale
	}
	if b.cfg.DefaultTimezone == "" {
		b.cfg.DefaultTimezone = defaults.DefaultTimezone
	}
	if b.cfg.Domain == "" {
		b.cfg.Domain = defaults.Domain
	}
	if len(b.cfg.TranslationDirectories) == 0 {
		b.cfg.TranslationDirectories = defaults.TranslationDirectories
	}
	if b.cfg.Root == "" {
		b.cfg.Root = defaults.Root
	}

	var err error
	if b.defaultLocale, err = i18n.ParseLocale(b.cfg.DefaultLocale); err != nil {
		return nil, fmt.Errorf("default locale: %w", err)
	}
	if b.defaultTimezone, err = i18n.ParseTimezone(b.cfg.DefaultTimezone); err != nil {
		return nil, fmt.Errorf("default timezone: %w", err)
	}

	b.dirs = make([]string, len(b.cfg.TranslationDirectories))
	for i, dir := range b.cfg.TranslationDirectories {
		b.dirs[i] = b.resolvePath(dir)
	}

	if b.cache == nil {
		b.cache = i18n.NewCatalogCache()
	}
	if b.loader == nil {
		b.loader = i18n.NewLoader(i18n.WithLoaderLogger(b.logger))
	}

	b.domain, err = b.NewDomain(b.cfg.Domain)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// resolvePath resolves a relative path against the configured root.
func (b *Babel) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(b.cfg.Root, p)
}

// Config returns the effective configuration.
func (b *Babel) Config() Config { return b.cfg }

// DefaultLocale returns the parsed default locale.
func (b *Babel) DefaultLocale() i18n.Locale { return b.defaultLocale }

// DefaultTimezone returns the default timezone.
func (b *Babel) DefaultTimezone() *time.Location { return b.defaultTimezone }

// TranslationDirectories returns the translation directories resolved
// against the root.
func (b *Babel) TranslationDirectories() []string {
	return append([]string(nil), b.dirs...)
}

// SetLocaleSelector replaces the locale selector. It is safe to call
// while requests are being served; nil removes the selector.
func (b *Babel) SetLocaleSelector(s LocaleSelector) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.localeSelector = s
}

// SetTimezoneSelector replaces the timezone selector. It is safe to call
// while requests are being served; nil removes the selector.
func (b *Babel) SetTimezoneSelector(s TimezoneSelector) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.timezoneSelector = s
}

// Locale returns the locale of ctx: a locale forced with ForceLocale, else
// the selector's choice, else the default locale. A selector returning an
// unparsable locale is an error.
func (b *Babel) Locale(ctx context.Context) (i18n.Locale, error) {
	if l, ok := ForcedLocale(ctx); ok {
		return l, nil
	}

	b.mu.RLock()
	selector := b.localeSelector
	b.mu.RUnlock()

	if selector != nil {
		if s := selector.SelectLocale(ctx); s != "" {
			return i18n.ParseLocale(s)
		}
	}
	return b.defaultLocale, nil
}

// Timezone returns the timezone of ctx: the selector's choice, else the
// default timezone. A selector returning an unknown zone is an error.
func (b *Babel) Timezone(ctx context.Context) (*time.Location, error) {
	b.mu.RLock()
	selector := b.timezoneSelector
	b.mu.RUnlock()

	if selector != nil {
		if s := selector.SelectTimezone(ctx); s != "" {
			return i18n.ParseTimezone(s)
		}
	}
	return b.defaultTimezone, nil
}

// ForceLocale runs fn with a context whose locale is forced to locale.
// The override lives only in the derived context, so the caller's locale
// is in effect again as soon as fn returns, panics or fails.
//
// Example:
//
//	err := b.ForceLocale(ctx, "de_DE", func(ctx context.Context) error {
//	    subject, err := b.Gettext(ctx, "Welcome")
//	    ...
//	})
func (b *Babel) ForceLocale(ctx context.Context, locale string, fn func(ctx context.Context) error) error {
	l, err := i18n.ParseLocale(locale)
	if err != nil {
		return err
	}
	return fn(WithForcedLocale(ctx, l))
}

// WithForcedLocale returns a copy of ctx with the locale forced to l.
func WithForcedLocale(ctx context.Context, l i18n.Locale) context.Context {
	return context.WithValue(ctx, forcedLocaleKey{}, l)
}

// ForcedLocale returns the locale forced in ctx, if any.
func ForcedLocale(ctx context.Context) (i18n.Locale, bool) {
	l, ok := ctx.Value(forcedLocaleKey{}).(i18n.Locale)
	return l, ok
}

// BestMatch returns the first language of an Accept-Language header when
// it is one of the configured languages, and the default locale otherwise.
func (b *Babel) BestMatch(header string) string {
	return i18n.BestMatch(header, b.cfg.Languages, b.defaultLocale.String())
}

// ListTranslations returns the locales that have catalogs in the
// translation directories, or the default locale when there are none.
func (b *Babel) ListTranslations() []i18n.Locale {
	return i18n.ListTranslations(b.dirs, b.defaultLocale)
}

// Domain returns the default translation domain.
func (b *Babel) Domain() *i18n.Domain { return b.domain }

// NewDomain creates a domain that resolves locales through b and shares
// its translation directories, loader and cache. Options are applied last.
func (b *Babel) NewDomain(name string, opts ...i18n.DomainOption) (*i18n.Domain, error) {
	base := []i18n.DomainOption{
		i18n.WithDirectories(b.dirs...),
		i18n.WithCatalogLoader(b.loader),
		i18n.WithCache(b.cache),
		i18n.WithDomainLogger(b.logger),
	}
	return i18n.NewDomain(name, b, append(base, opts...)...)
}

// Gettext translates msg in the default domain.
func (b *Babel) Gettext(ctx context.Context, msg string, vars ...i18n.M) (string, error) {
	return b.domain.Gettext(ctx, msg, vars...)
}

// NGettext translates a plural message in the default domain.
func (b *Babel) NGettext(ctx context.Context, singular, plural string, n int, vars ...i18n.M) (string, error) {
	return b.domain.NGettext(ctx, singular, plural, n, vars...)
}

// PGettext translates msg within a message context in the default domain.
func (b *Babel) PGettext(ctx context.Context, msgctxt, msg string, vars ...i18n.M) (string, error) {
	return b.domain.PGettext(ctx, msgctxt, msg, vars...)
}

// NPGettext translates a plural message within a message context in the
// default domain.
func (b *Babel) NPGettext(ctx context.Context, msgctxt, singular, plural string, n int, vars ...i18n.M) (string, error) {
	return b.domain.NPGettext(ctx, msgctxt, singular, plural, n, vars...)
}

// LazyGettext is the lazy variant of Gettext.
func (b *Babel) LazyGettext(msg string, vars ...i18n.M) i18n.LazyString {
	return b.domain.LazyGettext(msg, vars...)
}

// LazyNGettext is the lazy variant of NGettext.
func (b *Babel) LazyNGettext(singular, plural string, n int, vars ...i18n.M) i18n.LazyString {
	return b.domain.LazyNGettext(singular, plural, n, vars...)
}

// LazyPGettext is the lazy variant of PGettext.
func (b *Babel) LazyPGettext(msgctxt, msg string, vars ...i18n.M) i18n.LazyString {
	return b.domain.LazyPGettext(msgctxt, msg, vars...)
}

// LazyNPGettext is the lazy variant of NPGettext.
func (b *Babel) LazyNPGettext(msgctxt, singular, plural string, n int, vars ...i18n.M) i18n.LazyString {
	return b.domain.LazyNPGettext(msgctxt, singular, plural, n, vars...)
}

// LocaleExtractor returns a log extractor adding the locale forced with
// ForceLocale to records logged with its context.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		l, ok := ForcedLocale(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("forced_locale", l.String()), true
	}
}
