// Package babel adds gettext translations, locale selection and
// locale-aware formatting to Go web services.
//
// A Babel instance decides the locale and timezone of every request,
// resolves translations from gettext catalogs found in
// <dir>/<locale>/LC_MESSAGES/<domain>.{mo,po} and formats dates, numbers
// and currency amounts for the user.
//
// # Quick Start
//
//	cfg, err := babel.LoadConfig("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b, err := babel.New(cfg,
//	    babel.WithLogger(logger),
//	    babel.WithLocaleSelector(middlewares.LocaleSelector()),
//	    babel.WithTimezoneSelector(middlewares.TimezoneSelector()),
//	)
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Locale(b, middlewares.WithLocaleSources(
//	    middlewares.FromQuery("lang"),
//	    middlewares.FromAcceptLanguage(b),
//	)))
//
// Handlers then translate with the request context:
//
//	msg, err := b.Gettext(r.Context(), "Hello %(name)s!", i18n.M{"name": user.Name})
//
// # Locale Resolution
//
// Locale returns, in order: the locale forced with ForceLocale, the
// choice of the registered LocaleSelector, the default locale.
// ForceLocale never changes the caller's context, so the previous locale
// is in effect again when the callback returns:
//
//	err := b.ForceLocale(ctx, "de_DE", func(ctx context.Context) error {
//	    return mailer.Send(ctx, renderWelcome(ctx))
//	})
//
// # Configuration
//
// Config is read from BABEL_* environment variables, a .env file and an
// optional YAML file by LoadConfig. Options passed to New override it.
//
// # Strings Export
//
// ExportStrings and ImportStrings exchange translations with external tools
// through a JSON document; the babel command exposes them as
// export_strings and import_strings.
package babel
