package i18n

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/leonelquinteros/gotext"

	"github.com/dmitrymomot/babel/pkg/logger"
)

// DefaultDomain is the gettext domain used when none is configured.
const DefaultDomain = "messages"

// catalogExtensions lists the catalog file types in lookup order.
// Compiled catalogs win over their sources when both are present.
var catalogExtensions = []string{".mo", ".po"}

// CatalogLoader loads the merged catalog of a locale and domain from a list
// of translation directories.
type CatalogLoader interface {
	Load(locale Locale, domain string, dirs []string) (*Catalog, error)
}

// CatalogLoaderFunc adapts a function to the CatalogLoader interface.
type CatalogLoaderFunc func(locale Locale, domain string, dirs []string) (*Catalog, error)

// Load calls f.
func (f CatalogLoaderFunc) Load(locale Locale, domain string, dirs []string) (*Catalog, error) {
	return f(locale, domain, dirs)
}

// Loader reads catalogs laid out as <dir>/<locale>/LC_MESSAGES/<domain>.mo
// (or .po) from the OS filesystem or from an fs.FS.
type Loader struct {
	fsys   fs.FS
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderFS makes the loader read directories from fsys instead of the OS
// filesystem. Directory names are then fs.FS paths ("translations").
func WithLoaderFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithLoaderLogger sets the logger used to report loaded catalogs.
func WithLoaderLogger(log *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

// NewLoader creates a catalog loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: logger.NewNope()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges the catalogs found for locale in dirs, in order. Missing
// directories and missing files are skipped; the result may be empty.
// A catalog file that exists but cannot be parsed fails the whole load.
func (l *Loader) Load(locale Locale, domain string, dirs []string) (*Catalog, error) {
	if domain == "" {
		return nil, ErrEmptyDomain
	}

	merged := NewCatalog()
	for _, dir := range dirs {
		if !l.isDir(dir) {
			l.logger.Debug("translation directory not found", slog.String("dir", dir))
			continue
		}

		file, data, err := l.find(dir, locale, domain)
		if err != nil {
			return nil, err
		}
		if file == "" {
			continue
		}

		catalog, err := ParseCatalog(file, data)
		if err != nil {
			return nil, err
		}
		merged.Merge(catalog)

		l.logger.Debug("catalog loaded",
			slog.String("file", file),
			slog.String("locale", locale.String()),
			slog.Int("messages", catalog.Len()),
		)
	}

	return merged, nil
}

// find returns the first catalog file of the locale candidates in dir.
func (l *Loader) find(dir string, locale Locale, domain string) (string, []byte, error) {
	for _, candidate := range locale.Candidates() {
		for _, ext := range catalogExtensions {
			file := l.join(dir, candidate, "LC_MESSAGES", domain+ext)
			data, err := l.readFile(file)
			if err == nil {
				return file, data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return "", nil, fmt.Errorf("reading %q: %w", file, err)
			}
		}
	}
	return "", nil, nil
}

func (l *Loader) isDir(dir string) bool {
	var (
		info fs.FileInfo
		err  error
	)
	if l.fsys != nil {
		info, err = fs.Stat(l.fsys, dir)
	} else {
		info, err = os.Stat(dir)
	}
	return err == nil && info.IsDir()
}

func (l *Loader) readFile(name string) ([]byte, error) {
	if l.fsys != nil {
		return fs.ReadFile(l.fsys, name)
	}
	return os.ReadFile(name)
}

func (l *Loader) join(elem ...string) string {
	if l.fsys != nil {
		return path.Join(elem...)
	}
	return filepath.Join(elem...)
}

// ParseCatalog parses the content of a .mo or .po file into a Catalog.
// The file name only selects the format and labels errors.
func ParseCatalog(name string, data []byte) (*Catalog, error) {
	domain, err := ParseDomain(name, data)
	if err != nil {
		return nil, err
	}

	catalog := NewCatalog()
	catalog.language = domain.Language
	if domain.PluralForms != "" {
		if err := catalog.SetPluralForms(domain.PluralForms); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	for _, m := range DomainMessages(domain) {
		catalog.Add(m)
	}

	return catalog, nil
}

// ParseDomain validates and parses a .mo or .po file with gotext.
// Untranslated entries are kept, which makes it suitable for reading
// templates and source catalogs.
func ParseDomain(name string, data []byte) (*gotext.Domain, error) {
	if filepath.Ext(name) == ".mo" {
		if err := validateMO(data); err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrCatalogParse, name, err)
		}
		mo := gotext.NewMo()
		mo.Parse(data)
		return mo.GetDomain(), nil
	}

	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	if err := validatePO(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrCatalogParse, name, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po.GetDomain(), nil
}

// DomainMessages lists every entry of a parsed gotext domain, translated or
// not, ordered by context and id. The header entry is skipped.
func DomainMessages(domain *gotext.Domain) []Message {
	out := make([]Message, 0)
	for id, tr := range domain.GetTranslations() {
		if id == "" {
			continue
		}
		out = append(out, messageFromTranslation("", tr))
	}
	for ctx, translations := range domain.GetCtxTranslations() {
		for id, tr := range translations {
			if id == "" {
				continue
			}
			out = append(out, messageFromTranslation(ctx, tr))
		}
	}
	slices.SortFunc(out, func(a, b Message) int {
		return cmp.Or(cmp.Compare(a.Context, b.Context), cmp.Compare(a.ID, b.ID))
	})
	return out
}

func messageFromTranslation(ctx string, tr *gotext.Translation) Message {
	m := Message{Context: ctx, ID: tr.ID, PluralID: tr.PluralID}
	size := 0
	for idx := range tr.Trs {
		if idx >= 0 && idx < MaxPluralForms {
			size = max(size, idx+1)
		}
	}
	m.Strings = make([]string, size)
	for idx, s := range tr.Trs {
		if idx >= 0 && idx < size {
			m.Strings[idx] = s
		}
	}
	return m
}

// ListLocales returns the locales that have a catalog of any domain in one
// of dirs, i.e. a <dir>/<locale>/LC_MESSAGES directory holding a .mo or
// .po file. Directory names that are not locales are ignored.
func (l *Loader) ListLocales(dirs []string) []Locale {
	seen := make(map[string]Locale)
	for _, dir := range dirs {
		entries, err := l.readDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			locale, err := ParseLocale(entry.Name())
			if err != nil || !l.hasCatalog(l.join(dir, entry.Name(), "LC_MESSAGES")) {
				continue
			}
			seen[locale.String()] = locale
		}
	}

	out := make([]Locale, 0, len(seen))
	for _, locale := range seen {
		out = append(out, locale)
	}
	slices.SortFunc(out, func(a, b Locale) int { return cmp.Compare(a.String(), b.String()) })
	return out
}

func (l *Loader) hasCatalog(dir string) bool {
	entries, err := l.readDir(dir)
	if err != nil {
		return false
	}
	return slices.ContainsFunc(entries, func(e fs.DirEntry) bool {
		return !e.IsDir() && slices.Contains(catalogExtensions, filepath.Ext(e.Name()))
	})
}

func (l *Loader) readDir(dir string) ([]fs.DirEntry, error) {
	if l.fsys != nil {
		return fs.ReadDir(l.fsys, dir)
	}
	return os.ReadDir(dir)
}

// ListTranslations lists the locales with catalogs in dirs on the OS
// filesystem. When there are none, it returns fallback alone.
func ListTranslations(dirs []string, fallback Locale) []Locale {
	locales := NewLoader().ListLocales(dirs)
	if len(locales) == 0 {
		return []Locale{fallback}
	}
	return locales
}
