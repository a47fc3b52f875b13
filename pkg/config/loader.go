package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// loadDefaultEnv loads the default .env file once per process and keeps
// the result, so every Load reports a malformed file.
var loadDefaultEnv = sync.OnceValue(func() error { return LoadEnv() })

// noDefaultTag is a tag name no struct uses, so a parse with it as the
// default tag only sets fields whose variables are present.
const noDefaultTag = "configNoDefault"

// LoadEnv loads one or more .env files into the process environment.
// Variables already set in the environment are not overridden; earlier
// files win over later ones. Without arguments it loads ".env" from the
// working directory and ignores a missing file.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("loading env files: %w", err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// Load parses environment variables into v using its `env` and
// `envDefault` field tags. The default .env file is loaded once per
// process before the first parse; a malformed file fails every Load.
//
// Example:
//
//	type Config struct {
//		DefaultLocale string   `env:"BABEL_DEFAULT_LOCALE" envDefault:"en"`
//		Languages     []string `env:"BABEL_LANGUAGES" envSeparator:","`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := loadDefaultEnv(); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFile populates v from a YAML file and the environment. Precedence,
// lowest first: `envDefault` tags, the YAML file, variables set in the
// environment. An empty path behaves like Load.
//
// Fields tagged `,required` must be set in the environment even when the
// YAML file provides them.
func LoadFile[T any](path string, v *T) error {
	if err := Load(v); err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingConfig, fmt.Errorf("%s: %w", path, err))
	}

	// Re-apply explicitly set variables over the file without restoring defaults.
	if err := env.ParseWithOptions(v, env.Options{DefaultValueTagName: noDefaultTag}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
