package babel

import (
	"github.com/dmitrymomot/babel/pkg/config"
)

// Config holds the settings of a Babel instance. Values come from BABEL_*
// environment variables, a .env file or a YAML file.
type Config struct {
	// DefaultLocale is used when no locale is forced or selected.
	DefaultLocale string `env:"BABEL_DEFAULT_LOCALE" envDefault:"en" yaml:"default_locale"`
	// DefaultTimezone is used when no timezone is selected.
	DefaultTimezone string `env:"BABEL_DEFAULT_TIMEZONE" envDefault:"UTC" yaml:"default_timezone"`
	// Domain is the gettext domain of the default Domain.
	Domain string `env:"BABEL_DOMAIN" envDefault:"messages" yaml:"domain"`
	// TranslationDirectories are searched in order; later directories
	// override earlier ones. Relative paths are resolved against Root.
	TranslationDirectories []string `env:"BABEL_TRANSLATION_DIRECTORIES" envSeparator:"," envDefault:"translations" yaml:"translation_directories"`
	// Languages is the allow-list used by BestMatch.
	Languages []string `env:"BABEL_LANGUAGES" envSeparator:"," yaml:"languages"`
	// Root is the application root directory.
	Root string `env:"BABEL_ROOT" envDefault:"." yaml:"root"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		DefaultLocale:          "en",
		DefaultTimezone:        "UTC",
		Domain:                 "messages",
		TranslationDirectories: []string{"translations"},
		Root:                   ".",
	}
}

// LoadConfig reads the configuration from the environment and, when path
// is not empty, from a YAML file. Variables set in the environment win
// over the file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := config.LoadFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
