// Package config loads application configuration from environment
// variables, .env files and optional YAML files.
//
// It wraps github.com/joho/godotenv, github.com/caarlos0/env/v11 and
// gopkg.in/yaml.v3:
//
//   - LoadEnv loads one or more .env files into the process environment.
//   - Load parses the environment into a struct using `env` field tags.
//   - LoadFile layers a YAML file between `envDefault` values and
//     variables set in the environment.
//
// # Usage
//
//	type Config struct {
//		DefaultLocale string   `env:"BABEL_DEFAULT_LOCALE" envDefault:"en" yaml:"default_locale"`
//		Directories   []string `env:"BABEL_TRANSLATION_DIRECTORIES" envSeparator:"," envDefault:"translations" yaml:"translation_directories"`
//	}
//
//	var cfg Config
//	if err := config.LoadFile("babel.yaml", &cfg); err != nil {
//		log.Fatalf("loading config: %v", err)
//	}
//
// # Error Handling
//
// Parse failures wrap ErrParsingConfig and nil targets return
// ErrNilPointer; both can be checked with errors.Is.
package config
