package i18n

// Translator performs gettext lookups against one resolved catalog.
// It is what a Domain hands out for a request; templates and handlers that
// translate many strings can hold on to it instead of resolving the locale
// for every call.
type Translator struct {
	locale  Locale
	catalog *Catalog
}

// NewTranslator binds catalog to locale. A nil catalog translates every
// message to itself.
func NewTranslator(locale Locale, catalog *Catalog) *Translator {
	if catalog == nil {
		catalog = NewCatalog()
	}
	return &Translator{locale: locale, catalog: catalog}
}

// Gettext translates msg and interpolates vars when any are given.
func (t *Translator) Gettext(msg string, vars ...M) (string, error) {
	return interpolateOptional(t.catalog.Gettext(msg), vars)
}

// PGettext translates msg within a message context.
func (t *Translator) PGettext(msgctxt, msg string, vars ...M) (string, error) {
	return interpolateOptional(t.catalog.PGettext(msgctxt, msg), vars)
}

// NGettext selects the plural form for n and interpolates it with vars.
// "num" defaults to n.
func (t *Translator) NGettext(singular, plural string, n int, vars ...M) (string, error) {
	return interpolateCount(t.catalog.NGettext(singular, plural, n), n, vars)
}

// NPGettext is NGettext within a message context.
func (t *Translator) NPGettext(msgctxt, singular, plural string, n int, vars ...M) (string, error) {
	return interpolateCount(t.catalog.NPGettext(msgctxt, singular, plural, n), n, vars)
}

// TranslateMessage translates key with a single variable map and swallows
// interpolation errors by returning the untranslated key. Its signature fits
// callbacks of validation libraries that cannot report errors.
func (t *Translator) TranslateMessage(key string, values map[string]any) string {
	s, err := t.Gettext(key, values)
	if err != nil {
		return key
	}
	return s
}

// Locale returns the translator's locale.
func (t *Translator) Locale() Locale { return t.locale }

// Catalog returns the catalog used for lookups.
func (t *Translator) Catalog() *Catalog { return t.catalog }

func interpolateOptional(s string, vars []M) (string, error) {
	merged := mergeVars(vars...)
	if len(merged) == 0 {
		return s, nil
	}
	return Interpolate(s, merged)
}

func interpolateCount(s string, n int, vars []M) (string, error) {
	merged := mergeVars(vars...)
	if _, ok := merged["num"]; !ok {
		merged["num"] = n
	}
	return Interpolate(s, merged)
}
