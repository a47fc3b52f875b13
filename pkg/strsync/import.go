package strsync

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/logger"
)

// defaultPluralForms is written when neither the locale's catalog nor the
// template declares a rule.
const defaultPluralForms = "nplurals=2; plural=(n != 1);"

// ImportOptions configures Import.
type ImportOptions struct {
	// Domain is the gettext domain. Default: "messages".
	Domain string
	// Directory holds <locale>/LC_MESSAGES/<domain>.po catalogs.
	Directory string
	// Template is the path of the catalog template. Default: "<domain>.pot".
	Template string
	// Locales limits the written locales. Default: every locale found in
	// Directory, or DefaultLocale when there is none.
	Locales       []string
	DefaultLocale string
	Logger        *slog.Logger
}

func (o ImportOptions) withDefaults() ImportOptions {
	if o.Domain == "" {
		o.Domain = i18n.DefaultDomain
	}
	if o.Template == "" {
		o.Template = o.Domain + ".pot"
	}
	if o.DefaultLocale == "" {
		o.DefaultLocale = "en"
	}
	o.Logger = logger.Default(o.Logger)
	return o
}

// ImportResult describes the outcome of Import.
type ImportResult struct {
	// Files lists the written catalogs.
	Files []string
	// Dropped lists document keys missing from the template, sorted.
	Dropped []string
}

// Import rewrites the catalog of every known locale from the template.
// Every template message is kept and takes its translation from doc when
// doc has one for the locale; otherwise it is left untranslated. Document
// keys absent from the template are dropped. The Language and
// Plural-Forms headers of an existing catalog are preserved.
func Import(doc Document, opts ImportOptions) (*ImportResult, error) {
	opts = opts.withDefaults()

	data, err := os.ReadFile(opts.Template)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	template, err := i18n.ParseDomain(opts.Template, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	messages := i18n.DomainMessages(template)

	result := &ImportResult{Dropped: droppedKeys(doc, messages)}
	if len(result.Dropped) > 0 {
		opts.Logger.Warn("document ids missing from template were dropped",
			slog.Int("count", len(result.Dropped)),
			slog.String("template", opts.Template),
		)
	}

	for _, locale := range knownLocales(opts.Locales, opts.Directory, opts.DefaultLocale) {
		path := catalogPath(opts.Directory, locale, opts.Domain)

		headers, err := catalogHeaders(path, locale, template)
		if err != nil {
			return result, err
		}
		out, err := buildCatalog(doc, messages, locale, headers)
		if err != nil {
			return result, fmt.Errorf("building %s: %w", path, err)
		}
		if err := writeCatalog(path, out); err != nil {
			return result, err
		}

		result.Files = append(result.Files, path)
		opts.Logger.Debug("imported locale", slog.String("locale", locale), slog.String("path", path))
	}

	return result, nil
}

// header is one "Key: value" line of a catalog header.
type header struct {
	key, value string
}

// catalogHeaders returns the header of the catalog written to path: the
// template's header with Language and Plural-Forms taken from the
// existing catalog, if any.
func catalogHeaders(path, locale string, template *gotext.Domain) ([]header, error) {
	language := locale
	pluralForms := template.PluralForms

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		existing, err := i18n.ParseDomain(path, data)
		if err != nil {
			return nil, err
		}
		if existing.Language != "" {
			language = existing.Language
		}
		if existing.PluralForms != "" {
			pluralForms = existing.PluralForms
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}
	if pluralForms == "" {
		pluralForms = defaultPluralForms
	}

	values := map[string]string{
		"Mime-Version":              "1.0",
		"Content-Type":              "text/plain; charset=UTF-8",
		"Content-Transfer-Encoding": "8bit",
	}
	for key, v := range template.Headers {
		if len(v) > 0 {
			values[key] = v[0]
		}
	}
	delete(values, "Language")
	delete(values, "Plural-Forms")

	out := make([]header, 0, len(values)+2)
	for _, key := range slices.Sorted(maps.Keys(values)) {
		out = append(out, header{key, values[key]})
	}
	return append(out, header{"Language", language}, header{"Plural-Forms", pluralForms}), nil
}

var poEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`, "\r", `\r`)

// buildCatalog renders the catalog of one locale as PO source. The result
// is checked with the same parser the loader uses before it is returned.
func buildCatalog(doc Document, messages []i18n.Message, locale string, headers []header) ([]byte, error) {
	var b strings.Builder
	b.WriteString("msgid \"\"\nmsgstr \"\"\n")
	pluralForms := defaultPluralForms
	for _, h := range headers {
		fmt.Fprintf(&b, "\"%s: %s\\n\"\n", h.key, poEscaper.Replace(h.value))
		if h.key == "Plural-Forms" {
			pluralForms = h.value
		}
	}
	if _, err := i18n.CompilePluralForms(pluralForms); err != nil {
		return nil, err
	}
	nplurals := i18n.PluralCount(pluralForms)

	for _, m := range messages {
		text := doc[documentKey(m.Context, m.ID)][locale]

		b.WriteString("\n")
		if m.Context != "" {
			writePOString(&b, "msgctxt", m.Context)
		}
		writePOString(&b, "msgid", m.ID)
		if m.PluralID == "" {
			writePOString(&b, "msgstr", text.String())
			continue
		}
		writePOString(&b, "msgid_plural", m.PluralID)
		for i := range nplurals {
			writePOString(&b, "msgstr["+strconv.Itoa(i)+"]", text.Form(i))
		}
	}

	data := []byte(b.String())
	if _, err := i18n.ParseCatalog(locale+".po", data); err != nil {
		return nil, err
	}
	return data, nil
}

func writePOString(b *strings.Builder, keyword, value string) {
	b.WriteString(keyword)
	b.WriteString(" \"")
	b.WriteString(poEscaper.Replace(value))
	b.WriteString("\"\n")
}

func writeCatalog(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// droppedKeys lists the document keys that have no template message.
func droppedKeys(doc Document, messages []i18n.Message) []string {
	known := make(map[string]struct{}, len(messages))
	for _, m := range messages {
		known[documentKey(m.Context, m.ID)] = struct{}{}
	}

	var dropped []string
	for key := range doc {
		if _, ok := known[key]; !ok {
			dropped = append(dropped, key)
		}
	}
	slices.Sort(dropped)
	return dropped
}
