package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/babel"
)

// Source extracts a value from the request.
// Returns the value and true if found, or ("", false) if not present.
type Source func(r *http.Request) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []Source
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...Source) Extractor {
	return Extractor{sources: sources}
}

// Extract iterates sources in order and returns the first non-empty value.
// Returns ("", false) if all sources miss.
func (e Extractor) Extract(r *http.Request) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(r); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie returns a source that reads from a plain cookie.
func FromCookie(name string) Source {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromURLParam returns a source that reads a chi route parameter,
// e.g. {lang} in "/{lang}/about".
func FromURLParam(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := chi.URLParam(r, name)
		return v, v != ""
	}
}

// FromAcceptLanguage returns a source that matches the Accept-Language
// header against the languages configured in b. Requests without the
// header miss, so later sources still get a chance.
func FromAcceptLanguage(b *babel.Babel) Source {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		return b.BestMatch(header), true
	}
}
