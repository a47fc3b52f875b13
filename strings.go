package babel

import (
	"log/slog"
	"path/filepath"

	"github.com/dmitrymomot/babel/pkg/strsync"
)

// DefaultStringsFilename is the base name of the export document.
const DefaultStringsFilename = "translation_strings"

// ExportStringsOptions configures ExportStrings. Zero fields take the
// configured defaults. Paths are relative to the root.
type ExportStringsOptions struct {
	// Lang is the source locale. Default: the default locale.
	Lang   string
	Domain string
	// TranslationFolder defaults to the first translation directory.
	TranslationFolder string
	// OutputDir defaults to the root.
	OutputDir string
	// Filename is the document name without the .json extension.
	Filename string
}

// ImportStringsOptions configures ImportStrings. Zero fields take the
// configured defaults. Paths are relative to the root.
type ImportStringsOptions struct {
	Domain            string
	TranslationFolder string
	// InputDir defaults to the root.
	InputDir string
	Filename string
	// Template defaults to "<domain>.pot" in the root.
	Template string
}

// ExportStrings exports the strings of every locale into
// <output_dir>/<filename>.json and returns the written path.
func (b *Babel) ExportStrings(opts ExportStringsOptions) (string, error) {
	if opts.Lang == "" {
		opts.Lang = b.defaultLocale.String()
	}
	if opts.Domain == "" {
		opts.Domain = b.cfg.Domain
	}

	doc, err := strsync.Export(strsync.ExportOptions{
		Source:    opts.Lang,
		Domain:    opts.Domain,
		Directory: b.translationFolder(opts.TranslationFolder),
		Logger:    b.logger,
	})
	if err != nil {
		return "", err
	}

	path := b.documentPath(opts.OutputDir, opts.Filename)
	if err := strsync.WriteDocumentFile(path, doc); err != nil {
		return "", err
	}
	b.logger.Info("exported translation strings", slog.String("path", path), slog.Int("messages", len(doc)))
	return path, nil
}

// ImportStrings reads <input_dir>/<filename>.json and rewrites the catalog
// of every known locale from the template.
func (b *Babel) ImportStrings(opts ImportStringsOptions) (*strsync.ImportResult, error) {
	if opts.Domain == "" {
		opts.Domain = b.cfg.Domain
	}
	if opts.Template == "" {
		opts.Template = opts.Domain + ".pot"
	}

	doc, err := strsync.ReadDocumentFile(b.documentPath(opts.InputDir, opts.Filename))
	if err != nil {
		return nil, err
	}

	result, err := strsync.Import(doc, strsync.ImportOptions{
		Domain:        opts.Domain,
		Directory:     b.translationFolder(opts.TranslationFolder),
		Template:      b.resolvePath(opts.Template),
		DefaultLocale: b.defaultLocale.String(),
		Logger:        b.logger,
	})
	if err != nil {
		return nil, err
	}
	b.logger.Info("imported translation strings",
		slog.Int("catalogs", len(result.Files)),
		slog.Int("dropped", len(result.Dropped)),
	)
	return result, nil
}

func (b *Babel) translationFolder(folder string) string {
	if folder == "" {
		return b.dirs[0]
	}
	return b.resolvePath(folder)
}

func (b *Babel) documentPath(dir, filename string) string {
	if filename == "" {
		filename = DefaultStringsFilename
	}
	return b.resolvePath(filepath.Join(dir, filename+".json"))
}
