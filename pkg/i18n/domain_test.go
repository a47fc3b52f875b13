package i18n_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

type localeKey struct{}

// ctxResolver reads the locale from the context and falls back to "en".
var ctxResolver = i18n.LocaleResolverFunc(func(ctx context.Context) (i18n.Locale, error) {
	if s, ok := ctx.Value(localeKey{}).(string); ok {
		return i18n.ParseLocale(s)
	}
	return i18n.MustParseLocale("en"), nil
})

func withLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// countingLoader wraps the filesystem loader and counts its calls.
func countingLoader(calls *atomic.Int64) i18n.CatalogLoader {
	loader := i18n.NewLoader()
	return i18n.CatalogLoaderFunc(func(locale i18n.Locale, domain string, dirs []string) (*i18n.Catalog, error) {
		calls.Add(1)
		return loader.Load(locale, domain, dirs)
	})
}

func newTestDomain(t *testing.T, opts ...i18n.DomainOption) *i18n.Domain {
	t.Helper()
	opts = append([]i18n.DomainOption{i18n.WithDirectories(translationsDir)}, opts...)
	d, err := i18n.NewDomain(i18n.DefaultDomain, ctxResolver, opts...)
	require.NoError(t, err)
	return d
}

func TestNewDomain(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewDomain("", ctxResolver)
	require.ErrorIs(t, err, i18n.ErrEmptyDomain)

	_, err = i18n.NewDomain("messages", nil)
	require.ErrorIs(t, err, i18n.ErrNilResolver)

	d, err := i18n.NewDomain("admin", ctxResolver)
	require.NoError(t, err)
	assert.Equal(t, "admin", d.Name())
	assert.Equal(t, []string{"translations"}, d.Directories())
}

func TestDomain_Translations(t *testing.T) {
	t.Parallel()

	t.Run("cache hit returns identical catalog", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		d := newTestDomain(t, i18n.WithCatalogLoader(countingLoader(&calls)))
		ctx := withLocale(context.Background(), "de_DE")

		first, err := d.Translations(ctx)
		require.NoError(t, err)
		second, err := d.Translations(ctx)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("switching locales caches each once", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		d := newTestDomain(t, i18n.WithCatalogLoader(countingLoader(&calls)))
		ctx := context.Background()

		got, err := d.Gettext(withLocale(ctx, "en_US"), "Yes")
		require.NoError(t, err)
		assert.Equal(t, "Yes", got)

		got, err = d.Gettext(withLocale(ctx, "de_DE"), "Yes")
		require.NoError(t, err)
		assert.Equal(t, "Ja", got)

		got, err = d.Gettext(withLocale(ctx, "de_DE"), "Yes")
		require.NoError(t, err)
		assert.Equal(t, "Ja", got)

		assert.Equal(t, []i18n.CacheKey{
			{Locale: "de_DE", Domain: "messages"},
			{Locale: "en_US", Domain: "messages"},
		}, d.CacheKeys())
		assert.Equal(t, int64(2), calls.Load())
	})

	t.Run("concurrent first access loads once", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		d := newTestDomain(t, i18n.WithCatalogLoader(countingLoader(&calls)))
		ctx := withLocale(context.Background(), "de_DE")

		var wg sync.WaitGroup
		catalogs := make([]*i18n.Catalog, 16)
		for i := range catalogs {
			wg.Go(func() {
				c, err := d.Translations(ctx)
				if err == nil {
					catalogs[i] = c
				}
			})
		}
		wg.Wait()

		for _, c := range catalogs {
			require.NotNil(t, c)
			assert.Same(t, catalogs[0], c)
		}
		assert.Len(t, d.CacheKeys(), 1)
	})

	t.Run("load errors are not cached", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		loadErr := errors.New("disk on fire")
		d := newTestDomain(t, i18n.WithCatalogLoader(i18n.CatalogLoaderFunc(
			func(i18n.Locale, string, []string) (*i18n.Catalog, error) {
				calls.Add(1)
				return nil, loadErr
			},
		)))

		ctx := withLocale(context.Background(), "de_DE")
		_, err := d.Gettext(ctx, "Yes")
		require.ErrorIs(t, err, loadErr)
		_, err = d.Gettext(ctx, "Yes")
		require.ErrorIs(t, err, loadErr)

		assert.Equal(t, int64(2), calls.Load())
		assert.Empty(t, d.CacheKeys())
	})

	t.Run("corrupt catalog surfaces parse error", func(t *testing.T) {
		t.Parallel()

		d := newTestDomain(t, i18n.WithDirectories("testdata/broken"))
		_, err := d.Gettext(withLocale(context.Background(), "fr"), "Yes")
		require.ErrorIs(t, err, i18n.ErrCatalogParse)
	})

	t.Run("invalid locale from resolver", func(t *testing.T) {
		t.Parallel()

		d := newTestDomain(t)
		_, err := d.Gettext(withLocale(context.Background(), "??"), "Yes")
		require.ErrorIs(t, err, i18n.ErrInvalidLocale)
	})

	t.Run("domains sharing a cache keep separate keys", func(t *testing.T) {
		t.Parallel()

		shared := i18n.NewCatalogCache()
		defer shared.Close()

		messages := newTestDomain(t, i18n.WithCache(shared))
		test, err := i18n.NewDomain("test", ctxResolver, i18n.WithDirectories(translationsDir), i18n.WithCache(shared))
		require.NoError(t, err)

		ctx := withLocale(context.Background(), "de_DE")
		got, err := test.Gettext(ctx, "first")
		require.NoError(t, err)
		assert.Equal(t, "erste", got)

		got, err = messages.Gettext(ctx, "first")
		require.NoError(t, err)
		assert.Equal(t, "first", got)

		assert.Equal(t, []i18n.CacheKey{{Locale: "de_DE", Domain: "test"}}, test.CacheKeys())
		assert.Equal(t, []i18n.CacheKey{{Locale: "de_DE", Domain: "messages"}}, messages.CacheKeys())
	})
}

func TestDomain_Gettext(t *testing.T) {
	t.Parallel()

	d := newTestDomain(t)
	de := withLocale(context.Background(), "de_DE")
	en := withLocale(context.Background(), "en_US")

	t.Run("identity fallback", func(t *testing.T) {
		t.Parallel()

		for _, id := range []string{"Unknown", "", "Untranslated", "%(name)s stays"} {
			got, err := d.Gettext(de, id)
			require.NoError(t, err)
			assert.Equal(t, id, got)
		}
	})

	t.Run("interpolates only with variables", func(t *testing.T) {
		t.Parallel()

		got, err := d.Gettext(de, "Hello %(name)s!", i18n.M{"name": "Anna"})
		require.NoError(t, err)
		assert.Equal(t, "Hallo Anna!", got)

		got, err = d.Gettext(de, "Hello %(name)s!")
		require.NoError(t, err)
		assert.Equal(t, "Hallo %(name)s!", got)
	})

	t.Run("format mismatch is an error", func(t *testing.T) {
		t.Parallel()

		_, err := d.Gettext(de, "Broken %(name)s", i18n.M{"name": "x"})
		require.ErrorIs(t, err, i18n.ErrFormatMismatch)

		got, err := d.Gettext(en, "Broken %(name)s", i18n.M{"name": "x"})
		require.NoError(t, err)
		assert.Equal(t, "Broken x", got)
	})

	t.Run("ngettext plural forms", func(t *testing.T) {
		t.Parallel()

		got, err := d.NGettext(de, "%(num)s Apple", "%(num)s Apples", 3)
		require.NoError(t, err)
		assert.Equal(t, "3 Äpfel", got)

		got, err = d.NGettext(de, "%(num)s Apple", "%(num)s Apples", 1)
		require.NoError(t, err)
		assert.Equal(t, "1 Apfel", got)

		got, err = d.NGettext(en, "%(num)s Apple", "%(num)s Apples", 1)
		require.NoError(t, err)
		assert.Equal(t, "1 Apple", got)

		got, err = d.NGettext(en, "%(num)s Apple", "%(num)s Apples", 0)
		require.NoError(t, err)
		assert.Equal(t, "0 Apples", got)
	})

	t.Run("ngettext keeps caller num", func(t *testing.T) {
		t.Parallel()

		got, err := d.NGettext(de, "%(num)s Apple", "%(num)s Apples", 3, i18n.M{"num": "drei"})
		require.NoError(t, err)
		assert.Equal(t, "drei Äpfel", got)
	})

	t.Run("pgettext scopes by context", func(t *testing.T) {
		t.Parallel()

		got, err := d.PGettext(de, "month name", "May")
		require.NoError(t, err)
		assert.Equal(t, "Mai", got)

		got, err = d.PGettext(de, "verb", "May")
		require.NoError(t, err)
		assert.Equal(t, "Darf", got)

		got, err = d.PGettext(de, "unknown", "May")
		require.NoError(t, err)
		assert.Equal(t, "May", got)
	})

	t.Run("npgettext", func(t *testing.T) {
		t.Parallel()

		got, err := d.NPGettext(de, "inbox", "%(num)d message", "%(num)d messages", 5)
		require.NoError(t, err)
		assert.Equal(t, "5 Nachrichten", got)

		got, err = d.NPGettext(de, "outbox", "%(num)d message", "%(num)d messages", 1)
		require.NoError(t, err)
		assert.Equal(t, "1 message", got)
	})
}

func TestDomain_Lazy(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	d := newTestDomain(t, i18n.WithCatalogLoader(countingLoader(&calls)))
	yes := d.LazyGettext("Yes")

	t.Run("resolves per context", func(t *testing.T) {
		t.Parallel()

		got, err := yes.Resolve(withLocale(context.Background(), "de_DE"))
		require.NoError(t, err)
		assert.Equal(t, "Ja", got)

		got, err = yes.Resolve(withLocale(context.Background(), "en_US"))
		require.NoError(t, err)
		assert.Equal(t, "Yes", got)
	})

	t.Run("string uses resolver default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Yes", yes.String())
	})

	t.Run("marshals as JSON string", func(t *testing.T) {
		t.Parallel()

		out, err := json.Marshal(map[string]i18n.LazyString{"label": d.LazyNGettext("%(num)s Apple", "%(num)s Apples", 2)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"label":"2 Apples"}`, string(out))
	})

	t.Run("renders escaped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := d.LazyGettext("Hello %(name)s!", i18n.M{"name": "<b>Anna</b>"})
		require.NoError(t, s.Render(withLocale(context.Background(), "de_DE"), &buf))
		assert.Equal(t, "Hallo &lt;b&gt;Anna&lt;/b&gt;!", buf.String())

		buf.Reset()
		require.NoError(t, s.HTML().Render(withLocale(context.Background(), "de_DE"), &buf))
		assert.Equal(t, "Hallo <b>Anna</b>!", buf.String())
	})

	t.Run("context variants", func(t *testing.T) {
		t.Parallel()

		ctx := withLocale(context.Background(), "de_DE")
		got, err := d.LazyPGettext("verb", "May").Resolve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Darf", got)

		got, err = d.LazyNPGettext("inbox", "%(num)d message", "%(num)d messages", 1).Resolve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1 Nachricht", got)
	})

	t.Run("string falls back to the message id on error", func(t *testing.T) {
		t.Parallel()

		broken := i18n.Lazy(func(context.Context) (string, error) { return "", i18n.ErrFormatMismatch })
		assert.NotPanics(t, func() { _ = broken.String() })
		assert.Equal(t, "", broken.String())

		_, err := broken.MarshalText()
		require.ErrorIs(t, err, i18n.ErrFormatMismatch)

		// %(num)d with a string value fails interpolation.
		bad := d.LazyGettext("Total: %(num)d", i18n.M{"num": "many"})
		_, err = bad.Resolve(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Total: %(num)d", bad.String())
		assert.Equal(t, "Total: %(num)d", fmt.Sprint(bad))

		plural := d.LazyNGettext("%(num)d item of %(owner)d", "%(num)d items of %(owner)d", 3, i18n.M{"owner": "x"})
		assert.Equal(t, "%(num)d items of %(owner)d", plural.String())
	})

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()

		var s i18n.LazyString
		assert.Equal(t, "", s.String())
	})
}
