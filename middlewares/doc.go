// Package middlewares provides HTTP middleware connecting a Babel instance
// to net/http and chi routers.
//
// # Locale
//
// Locale picks the locale and timezone of each request from an ordered
// list of sources and stores them in the request context. LocaleSelector
// and TimezoneSelector hand them to Babel:
//
//	b, err := babel.New(cfg,
//	    babel.WithLocaleSelector(middlewares.LocaleSelector()),
//	    babel.WithTimezoneSelector(middlewares.TimezoneSelector()),
//	)
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Locale(b))
//
// By default the locale comes from the "lang" query parameter, then the
// "lang" cookie, then the Accept-Language header matched against the
// configured languages. The timezone comes from the "tz" cookie or the
// X-Timezone header. Use WithLocaleSources and WithTimezoneSources to
// change the order:
//
//	r.Route("/{lang}", func(r chi.Router) {
//	    r.Use(middlewares.Locale(b,
//	        middlewares.WithLocaleSources(
//	            middlewares.FromURLParam("lang"),
//	            middlewares.FromAcceptLanguage(b),
//	        ),
//	    ))
//	})
//
// Only allowed locales are stored: the configured languages by default,
// or the list given to WithAllowedLocales. A request for "de_AT" falls
// back to "de" when only "de" is allowed, so arbitrary region variants
// never create catalogs of their own.
//
// Use RequestLocaleExtractor with logger.New for automatic locale in logs:
//
//	log, err := logger.New(logger.Config{}, middlewares.RequestLocaleExtractor())
package middlewares
