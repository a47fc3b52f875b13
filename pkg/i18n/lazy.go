package i18n

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/babel/pkg/sanitizer"
)

// LazyString is a translation that is looked up when it is used rather
// than when it is created. Every use resolves the locale again, so a
// LazyString declared at package level renders in the language of each
// request.
type LazyString struct {
	fn       func(ctx context.Context) (string, error)
	fallback string
}

// Lazy wraps fn into a LazyString.
func Lazy(fn func(ctx context.Context) (string, error)) LazyString {
	return LazyString{fn: fn}
}

// lazyMessage wraps fn into a LazyString whose String falls back to msgid.
func lazyMessage(msgid string, fn func(ctx context.Context) (string, error)) LazyString {
	return LazyString{fn: fn, fallback: msgid}
}

// Resolve performs the lookup for the locale active in ctx.
func (s LazyString) Resolve(ctx context.Context) (string, error) {
	if s.fn == nil {
		return "", nil
	}
	return s.fn(ctx)
}

// String resolves the string without a request context, which uses the
// default locale unless a resolver says otherwise. When the lookup fails
// it returns the untranslated message id; use Resolve to see the error.
func (s LazyString) String() string {
	v, err := s.Resolve(context.Background())
	if err != nil {
		return s.fallback
	}
	return v
}

// MarshalText implements encoding.TextMarshaler, so lazy strings encode as
// JSON strings.
func (s LazyString) MarshalText() ([]byte, error) {
	v, err := s.Resolve(context.Background())
	if err != nil {
		return nil, err
	}
	return []byte(v), nil
}

// Render implements templ.Component. The translation is HTML-escaped.
func (s LazyString) Render(ctx context.Context, w io.Writer) error {
	v, err := s.Resolve(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, templ.EscapeString(v))
	return err
}

// HTML returns a component that renders the translation as markup.
// Only inline formatting survives; see sanitizer.TranslationHTML.
func (s LazyString) HTML() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v, err := s.Resolve(ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, sanitizer.TranslationHTML(v))
		return err
	})
}

var _ templ.Component = LazyString{}
