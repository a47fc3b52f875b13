package i18n

import (
	"cmp"
	"maps"
	"slices"
)

// Message is a single catalog entry. Strings holds one translation per
// plural form; singular messages have exactly one.
type Message struct {
	Context  string
	ID       string
	PluralID string
	Strings  []string
}

// translated reports whether at least one form is non-empty.
func (m Message) translated() bool {
	for _, s := range m.Strings {
		if s != "" {
			return true
		}
	}
	return false
}

type messageKey struct {
	context string
	id      string
}

// Catalog holds the translations of one locale and domain together with the
// plural rule that maps a count to a plural form index.
//
// A Catalog is built by the Loader and must not be modified once it has been
// handed out by a Domain.
type Catalog struct {
	messages    map[messageKey]Message
	plural      PluralForm
	pluralForms string
	language    string
}

// NewCatalog returns an empty catalog using the Germanic plural rule.
// An empty catalog translates every message to itself.
func NewCatalog() *Catalog {
	return &Catalog{
		messages: make(map[messageKey]Message),
		plural:   GermanicPluralForm,
	}
}

// Add stores m, replacing any entry with the same context and id.
// Messages without a single non-empty translation are ignored.
func (c *Catalog) Add(m Message) {
	if m.ID == "" || !m.translated() {
		return
	}
	c.messages[messageKey{context: m.Context, id: m.ID}] = m
}

// SetPluralForms installs the rule described by a Plural-Forms header value
// such as "nplurals=2; plural=(n != 1);".
func (c *Catalog) SetPluralForms(header string) error {
	rule, err := CompilePluralForms(header)
	if err != nil {
		return err
	}
	c.plural = rule
	c.pluralForms = header
	return nil
}

// PluralForms returns the Plural-Forms header the rule was compiled from,
// or an empty string when the default rule is in use.
func (c *Catalog) PluralForms() string { return c.pluralForms }

// Plural returns the plural rule of the catalog.
func (c *Catalog) Plural() PluralForm { return c.plural }

// Language returns the Language header of the last merged catalog.
func (c *Catalog) Language() string { return c.language }

// Len returns the number of translated messages.
func (c *Catalog) Len() int { return len(c.messages) }

// Merge copies every message of other into c, overriding entries with the
// same key. The plural rule is taken over only when other defines one.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	maps.Copy(c.messages, other.messages)
	if other.pluralForms != "" {
		c.plural = other.plural
		c.pluralForms = other.pluralForms
	}
	if other.language != "" {
		c.language = other.language
	}
}

// Lookup returns the entry stored for the given context and id.
func (c *Catalog) Lookup(context, id string) (Message, bool) {
	m, ok := c.messages[messageKey{context: context, id: id}]
	return m, ok
}

// Messages returns all entries ordered by context and id.
func (c *Catalog) Messages() []Message {
	out := slices.Collect(maps.Values(c.messages))
	slices.SortFunc(out, func(a, b Message) int {
		return cmp.Or(cmp.Compare(a.Context, b.Context), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Gettext returns the translation of id, or id itself.
func (c *Catalog) Gettext(id string) string {
	return c.PGettext("", id)
}

// PGettext returns the translation of id within context, or id itself.
func (c *Catalog) PGettext(context, id string) string {
	if m, ok := c.Lookup(context, id); ok && len(m.Strings) > 0 && m.Strings[0] != "" {
		return m.Strings[0]
	}
	return id
}

// NGettext returns the plural form of singular selected for n.
// Untranslated messages fall back to singular when n == 1 and to plural otherwise.
func (c *Catalog) NGettext(singular, plural string, n int) string {
	return c.NPGettext("", singular, plural, n)
}

// NPGettext is NGettext scoped by a message context.
func (c *Catalog) NPGettext(context, singular, plural string, n int) string {
	if m, ok := c.Lookup(context, singular); ok {
		idx := c.plural(n)
		if idx >= 0 && idx < len(m.Strings) && m.Strings[idx] != "" {
			return m.Strings[idx]
		}
	}
	if n == 1 {
		return singular
	}
	return plural
}
