package i18n

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/babel/pkg/cache"
	"github.com/dmitrymomot/babel/pkg/logger"
)

// LocaleResolver determines the locale of the current request.
type LocaleResolver interface {
	Locale(ctx context.Context) (Locale, error)
}

// LocaleResolverFunc adapts a function to the LocaleResolver interface.
type LocaleResolverFunc func(ctx context.Context) (Locale, error)

// Locale calls f.
func (f LocaleResolverFunc) Locale(ctx context.Context) (Locale, error) { return f(ctx) }

// FixedLocale returns a resolver that always yields l.
func FixedLocale(l Locale) LocaleResolver {
	return LocaleResolverFunc(func(context.Context) (Locale, error) { return l, nil })
}

// CacheKey identifies a cached catalog.
type CacheKey struct {
	Locale string
	Domain string
}

// String encodes the key as "<locale>:<domain>". Locale strings never
// contain a colon, so the encoding is reversible.
func (k CacheKey) String() string { return k.Locale + ":" + k.Domain }

func parseCacheKey(s string) (CacheKey, bool) {
	locale, domain, ok := strings.Cut(s, ":")
	return CacheKey{Locale: locale, Domain: domain}, ok
}

// Domain resolves gettext lookups for one translation domain.
//
// Catalogs are loaded on first use per locale and kept in the cache for the
// lifetime of the process: they are never reloaded or invalidated.
// A Domain is safe for concurrent use.
type Domain struct {
	name     string
	dirs     []string
	resolver LocaleResolver
	loader   CatalogLoader
	cache    cache.Cache[*Catalog]
	logger   *slog.Logger
}

// DomainOption configures a Domain.
type DomainOption func(*Domain)

// WithDirectories sets the translation directories searched in order.
// Default: "translations".
func WithDirectories(dirs ...string) DomainOption {
	return func(d *Domain) {
		d.dirs = slices.Clone(dirs)
	}
}

// WithCatalogLoader replaces the filesystem loader.
func WithCatalogLoader(l CatalogLoader) DomainOption {
	return func(d *Domain) {
		if l != nil {
			d.loader = l
		}
	}
}

// WithCache makes the domain store catalogs in c. Several domains may share
// one cache since keys include the domain name.
func WithCache(c cache.Cache[*Catalog]) DomainOption {
	return func(d *Domain) {
		if c != nil {
			d.cache = c
		}
	}
}

// WithDomainLogger sets the logger used for cache misses.
func WithDomainLogger(l *slog.Logger) DomainOption {
	return func(d *Domain) {
		d.logger = logger.Default(l)
	}
}

// NewCatalogCache creates the cache a Domain stores its catalogs in.
// Entries never expire.
func NewCatalogCache() *cache.Memory[*Catalog] {
	return cache.NewMemory[*Catalog](
		cache.WithDefaultTTL(cache.NoExpiration),
		cache.WithCleanupInterval(0),
	)
}

// NewDomain creates a Domain named name that uses resolver to pick the
// locale of each lookup.
func NewDomain(name string, resolver LocaleResolver, opts ...DomainOption) (*Domain, error) {
	if name == "" {
		return nil, ErrEmptyDomain
	}
	if resolver == nil {
		return nil, ErrNilResolver
	}

	d := &Domain{
		name:     name,
		dirs:     []string{"translations"},
		resolver: resolver,
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.loader == nil {
		d.loader = NewLoader(WithLoaderLogger(d.logger))
	}
	if d.cache == nil {
		d.cache = NewCatalogCache()
	}

	return d, nil
}

// Name returns the domain name.
func (d *Domain) Name() string { return d.name }

// Directories returns the translation directories.
func (d *Domain) Directories() []string { return slices.Clone(d.dirs) }

// Translations returns the catalog of the locale active in ctx, loading it
// on the first request for that locale. Later calls return the same *Catalog.
func (d *Domain) Translations(ctx context.Context) (*Catalog, error) {
	locale, err := d.resolver.Locale(ctx)
	if err != nil {
		return nil, err
	}
	return d.catalog(ctx, locale)
}

// Translator returns a translator bound to the locale active in ctx.
func (d *Domain) Translator(ctx context.Context) (*Translator, error) {
	locale, err := d.resolver.Locale(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := d.catalog(ctx, locale)
	if err != nil {
		return nil, err
	}
	return NewTranslator(locale, catalog), nil
}

func (d *Domain) catalog(ctx context.Context, locale Locale) (*Catalog, error) {
	key := CacheKey{Locale: locale.String(), Domain: d.name}

	return cache.GetOrSet(ctx, d.cache, key.String(), func(ctx context.Context) (*Catalog, time.Duration, error) {
		start := time.Now()
		catalog, err := d.loader.Load(locale, d.name, d.dirs)
		if err != nil {
			return nil, 0, fmt.Errorf("loading %s: %w", key, err)
		}
		if catalog == nil {
			catalog = NewCatalog()
		}

		d.logger.DebugContext(ctx, "translations cached",
			slog.String("locale", key.Locale),
			slog.String("domain", key.Domain),
			slog.Int("messages", catalog.Len()),
			slog.Duration("took", time.Since(start)),
		)
		return catalog, cache.NoExpiration, nil
	})
}

// CacheKeys lists the cached catalogs of this domain ordered by locale.
func (d *Domain) CacheKeys() []CacheKey {
	raw, err := d.cache.Keys(context.Background())
	if err != nil {
		return nil
	}

	keys := make([]CacheKey, 0, len(raw))
	for _, s := range raw {
		if k, ok := parseCacheKey(s); ok && k.Domain == d.name {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b CacheKey) int {
		return cmp.Or(cmp.Compare(a.Locale, b.Locale), cmp.Compare(a.Domain, b.Domain))
	})
	return keys
}

// Gettext translates msg. Untranslated messages are returned unchanged.
// When vars are given, the result is interpolated with them.
func (d *Domain) Gettext(ctx context.Context, msg string, vars ...M) (string, error) {
	t, err := d.Translator(ctx)
	if err != nil {
		return "", err
	}
	return t.Gettext(msg, vars...)
}

// NGettext translates a message with a plural form selected for n.
// The result is always interpolated, with "num" set to n unless vars define it.
func (d *Domain) NGettext(ctx context.Context, singular, plural string, n int, vars ...M) (string, error) {
	t, err := d.Translator(ctx)
	if err != nil {
		return "", err
	}
	return t.NGettext(singular, plural, n, vars...)
}

// PGettext is Gettext for a message scoped by a context string.
func (d *Domain) PGettext(ctx context.Context, msgctxt, msg string, vars ...M) (string, error) {
	t, err := d.Translator(ctx)
	if err != nil {
		return "", err
	}
	return t.PGettext(msgctxt, msg, vars...)
}

// NPGettext is NGettext for a message scoped by a context string.
func (d *Domain) NPGettext(ctx context.Context, msgctxt, singular, plural string, n int, vars ...M) (string, error) {
	t, err := d.Translator(ctx)
	if err != nil {
		return "", err
	}
	return t.NPGettext(msgctxt, singular, plural, n, vars...)
}

// LazyGettext defers Gettext until the string is rendered.
func (d *Domain) LazyGettext(msg string, vars ...M) LazyString {
	return lazyMessage(msg, func(ctx context.Context) (string, error) {
		return d.Gettext(ctx, msg, vars...)
	})
}

// LazyNGettext defers NGettext until the string is rendered.
func (d *Domain) LazyNGettext(singular, plural string, n int, vars ...M) LazyString {
	return lazyMessage(sourceForm(singular, plural, n), func(ctx context.Context) (string, error) {
		return d.NGettext(ctx, singular, plural, n, vars...)
	})
}

// LazyPGettext defers PGettext until the string is rendered.
func (d *Domain) LazyPGettext(msgctxt, msg string, vars ...M) LazyString {
	return lazyMessage(msg, func(ctx context.Context) (string, error) {
		return d.PGettext(ctx, msgctxt, msg, vars...)
	})
}

// LazyNPGettext defers NPGettext until the string is rendered.
func (d *Domain) LazyNPGettext(msgctxt, singular, plural string, n int, vars ...M) LazyString {
	return lazyMessage(sourceForm(singular, plural, n), func(ctx context.Context) (string, error) {
		return d.NPGettext(ctx, msgctxt, singular, plural, n, vars...)
	})
}

// sourceForm picks the untranslated form for n using the English rule.
func sourceForm(singular, plural string, n int) string {
	if n == 1 {
		return singular
	}
	return plural
}
