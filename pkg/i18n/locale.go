package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a language with an optional script and region.
// The zero value is not a valid locale; use ParseLocale.
type Locale struct {
	tag      language.Tag
	language string
	script   string
	region   string
}

// ParseLocale parses a locale identifier. Both gettext style ("de_DE",
// "sr_Latn_RS", "de_DE.UTF-8") and BCP 47 style ("de-DE") are accepted.
func ParseLocale(s string) (Locale, error) {
	raw := strings.TrimSpace(s)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" {
		return Locale{}, fmt.Errorf("%w: empty identifier", ErrInvalidLocale)
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %s", ErrInvalidLocale, s, err)
	}

	base, script, region := tag.Raw()
	if base.String() == "und" {
		return Locale{}, fmt.Errorf("%w: %q has no language", ErrInvalidLocale, s)
	}

	l := Locale{tag: tag, language: base.String()}
	if script != (language.Script{}) {
		l.script = script.String()
	}
	if region != (language.Region{}) {
		l.region = region.String()
	}
	return l, nil
}

// MustParseLocale is like ParseLocale but panics on error.
func MustParseLocale(s string) Locale {
	l, err := ParseLocale(s)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the gettext form of the locale, e.g. "de_DE" or "zh_Hans_CN".
func (l Locale) String() string {
	if l.language == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(l.language)
	if l.script != "" {
		b.WriteByte('_')
		b.WriteString(l.script)
	}
	if l.region != "" {
		b.WriteByte('_')
		b.WriteString(l.region)
	}
	return b.String()
}

// Language returns the ISO 639 language code ("de").
func (l Locale) Language() string { return l.language }

// Script returns the ISO 15924 script code or an empty string.
func (l Locale) Script() string { return l.script }

// Region returns the region code or an empty string.
func (l Locale) Region() string { return l.region }

// Tag returns the BCP 47 tag used by golang.org/x/text.
func (l Locale) Tag() language.Tag { return l.tag }

// IsZero reports whether l is the zero Locale.
func (l Locale) IsZero() bool { return l.language == "" }

// Equal reports whether both locales have the same canonical form.
func (l Locale) Equal(other Locale) bool { return l.String() == other.String() }

// Candidates returns the directory names tried when looking up catalogs,
// most specific first: "zh_Hans_CN", "zh_CN", "zh".
func (l Locale) Candidates() []string {
	if l.IsZero() {
		return nil
	}
	out := []string{l.String()}
	if l.script != "" && l.region != "" {
		out = append(out, l.language+"_"+l.region)
	}
	if l.script != "" || l.region != "" {
		out = append(out, l.language)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (l Locale) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Locale) UnmarshalText(text []byte) error {
	parsed, err := ParseLocale(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
