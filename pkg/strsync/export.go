package strsync

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/logger"
)

// ExportOptions configures Export.
type ExportOptions struct {
	// Source is the locale whose catalog defines the exported ids. Default: "en".
	Source string
	// Domain is the gettext domain. Default: "messages".
	Domain string
	// Directory holds <locale>/LC_MESSAGES/<domain>.po catalogs.
	Directory string
	// Locales limits the exported locales. Default: every locale found in Directory.
	Locales []string
	Logger  *slog.Logger
}

func (o ExportOptions) withDefaults() ExportOptions {
	if o.Source == "" {
		o.Source = "en"
	}
	if o.Domain == "" {
		o.Domain = i18n.DefaultDomain
	}
	o.Logger = logger.Default(o.Logger)
	return o
}

// Export collects the strings of every locale into a Document. Every
// message of the source catalog is exported with its source text, which is
// empty when untranslated. Other locales only contribute non-empty
// translations of messages known to the source catalog.
func Export(opts ExportOptions) (Document, error) {
	opts = opts.withDefaults()

	sourcePath := catalogPath(opts.Directory, opts.Source, opts.Domain)
	source, err := readCatalog(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceCatalog, err)
	}

	doc := make(Document, len(source))
	for _, m := range source {
		doc[documentKey(m.Context, m.ID)] = map[string]Text{opts.Source: textOf(m)}
	}

	for _, locale := range knownLocales(opts.Locales, opts.Directory, opts.Source) {
		if locale == opts.Source {
			continue
		}

		path := catalogPath(opts.Directory, locale, opts.Domain)
		messages, err := readCatalog(path)
		if errors.Is(err, fs.ErrNotExist) {
			opts.Logger.Debug("no catalog for locale", slog.String("locale", locale), slog.String("path", path))
			continue
		}
		if err != nil {
			return nil, err
		}

		translated := 0
		for _, m := range messages {
			entry, ok := doc[documentKey(m.Context, m.ID)]
			if !ok || !hasTranslation(m) {
				continue
			}
			entry[locale] = textOf(m)
			translated++
		}
		opts.Logger.Debug("exported locale",
			slog.String("locale", locale),
			slog.Int("translated", translated),
			slog.Int("total", len(doc)),
		)
	}

	return doc, nil
}

// catalogPath returns <dir>/<locale>/LC_MESSAGES/<domain>.po.
func catalogPath(dir, locale, domain string) string {
	return filepath.Join(dir, locale, "LC_MESSAGES", domain+".po")
}

// readCatalog reads every message of a PO file, translated or not.
func readCatalog(path string) ([]i18n.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	domain, err := i18n.ParseDomain(path, data)
	if err != nil {
		return nil, err
	}
	return i18n.DomainMessages(domain), nil
}

// knownLocales returns the explicit locales or the ones found in dir.
func knownLocales(explicit []string, dir, fallback string) []string {
	if len(explicit) > 0 {
		return explicit
	}

	def, err := i18n.ParseLocale(fallback)
	if err != nil {
		return []string{fallback}
	}
	found := i18n.ListTranslations([]string{dir}, def)
	out := make([]string, len(found))
	for i, l := range found {
		out[i] = l.String()
	}
	return out
}

func textOf(m i18n.Message) Text {
	if m.PluralID != "" {
		return Plural(m.Strings...)
	}
	if len(m.Strings) == 0 {
		return Singular("")
	}
	return Singular(m.Strings[0])
}

func hasTranslation(m i18n.Message) bool {
	for _, s := range m.Strings {
		if s != "" {
			return true
		}
	}
	return false
}
