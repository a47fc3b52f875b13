// Package i18n provides gettext-style translation catalogs, locale parsing
// and locale-aware formatting of numbers, currencies, dates and time spans.
//
// Catalogs are standard gettext files laid out as
// <dir>/<locale>/LC_MESSAGES/<domain>.mo (or .po). The package parses both
// formats with github.com/leonelquinteros/gotext after validating them, so
// a present but corrupt file is reported as ErrCatalogParse instead of
// being silently ignored.
//
// # Domains
//
// A Domain binds a gettext domain name to a list of translation
// directories and a LocaleResolver that picks the locale of each call from
// the context. Catalogs are loaded lazily on first use per locale and
// cached; concurrent first accesses load the catalog once:
//
//	resolver := i18n.LocaleResolverFunc(func(ctx context.Context) (i18n.Locale, error) {
//		return localeFromRequest(ctx), nil
//	})
//
//	d, err := i18n.NewDomain("messages", resolver,
//		i18n.WithDirectories("translations", "plugins/translations"),
//	)
//
//	msg, err := d.Gettext(ctx, "Hello %(name)s!", i18n.M{"name": "Anna"})
//	// de_DE: "Hallo Anna!"
//
//	apples, err := d.NGettext(ctx, "%(num)s Apple", "%(num)s Apples", 3)
//	// de_DE: "3 Äpfel"
//
// Catalogs found in later directories are merged over earlier ones, so an
// application can override strings shipped by a library. Locales with a
// script or region fall back to shorter forms: zh_Hant_TW tries zh_Hant_TW,
// zh_TW and zh.
//
// # Interpolation
//
// Messages use Python-style named conversions such as %(name)s, %(num)d or
// %(price).2f. A literal percent sign is written as %%. Singular lookups
// interpolate only when variables are given; plural lookups always do and
// provide "num" as the count unless the caller sets it.
//
// # Lazy strings
//
// LazyString defers the lookup until it is rendered, which lets package
// level labels follow the locale of each request:
//
//	var title = d.LazyGettext("Dashboard")
//
//	title.Resolve(ctx)                // per request
//	templ.Component(title)            // HTML-escaped in templ templates
//	title.HTML()                      // sanitized markup for trusted catalogs
//
// # Formatting
//
// Formatter renders values for one locale and timezone. Numbers go through
// golang.org/x/text; date layouts and month names come from LocaleFormat
// presets selected by FormatFor:
//
//	f := i18n.NewFormatter(i18n.MustParseLocale("de_DE"), time.UTC)
//	f.FormatNumber(1234.5)                    // "1.234,5"
//	f.FormatCurrency(1234.5, "EUR")           // "1.234,50 €"
//	f.FormatDate(t, "long")                   // "5. März 2024"
//	f.FormatTimedelta(-48*time.Hour, i18n.TimedeltaOptions{AddDirection: true})
//	// "vor 2 Tagen"
package i18n
