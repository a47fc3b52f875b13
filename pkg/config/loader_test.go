package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/config"
)

type testConfig struct {
	Locale    string   `env:"CONFIG_TEST_LOCALE" envDefault:"en" yaml:"locale"`
	Timezone  string   `env:"CONFIG_TEST_TIMEZONE" envDefault:"UTC" yaml:"timezone"`
	Languages []string `env:"CONFIG_TEST_LANGUAGES" envSeparator:"," yaml:"languages"`
	Port      int      `env:"CONFIG_TEST_PORT" envDefault:"3000" yaml:"port"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

func unsetTestEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_TEST_LOCALE", "CONFIG_TEST_TIMEZONE", "CONFIG_TEST_LANGUAGES", "CONFIG_TEST_PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetTestEnv(t)

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Empty(t, cfg.Languages)
	assert.Equal(t, 3000, cfg.Port)
}

func TestLoad_Environment(t *testing.T) {
	unsetTestEnv(t)
	t.Setenv("CONFIG_TEST_LOCALE", "pt_BR")
	t.Setenv("CONFIG_TEST_LANGUAGES", "pt,en")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "pt_BR", cfg.Locale)
	assert.Equal(t, []string{"pt", "en"}, cfg.Languages)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("invalid value", func(t *testing.T) {
		unsetTestEnv(t)
		t.Setenv("CONFIG_TEST_PORT", "not-a-number")

		var cfg testConfig
		require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_REQUIRED", "")
		require.NoError(t, os.Unsetenv("CONFIG_TEST_REQUIRED"))

		var cfg requiredConfig
		require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}

func TestLoad_MalformedDefaultEnv(t *testing.T) {
	unsetTestEnv(t)
	config.SetDefaultEnv(t, "testdata/.env.malformed")

	var cfg testConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Contains(t, err.Error(), "BAD-KEY")

	// The failure is kept, not retried into a silent success.
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	require.ErrorIs(t, config.LoadFile("testdata/config.yaml", &cfg), config.ErrParsingConfig)
}

func TestLoadEnv(t *testing.T) {
	unsetTestEnv(t)

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "de_DE", cfg.Locale)
	assert.Equal(t, []string{"de", "en", "fr"}, cfg.Languages)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadEnv_DoesNotOverride(t *testing.T) {
	unsetTestEnv(t)
	t.Setenv("CONFIG_TEST_LOCALE", "ja_JP")

	require.NoError(t, config.LoadEnv("testdata/.env.test"))
	assert.Equal(t, "ja_JP", os.Getenv("CONFIG_TEST_LOCALE"))
}

func TestLoadEnv_MissingFile(t *testing.T) {
	require.Error(t, config.LoadEnv("testdata/missing.env"))
	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
}

func TestLoadFile(t *testing.T) {
	t.Run("yaml over defaults", func(t *testing.T) {
		unsetTestEnv(t)

		var cfg testConfig
		require.NoError(t, config.LoadFile("testdata/config.yaml", &cfg))

		assert.Equal(t, "fr_FR", cfg.Locale)
		assert.Equal(t, "Europe/Paris", cfg.Timezone)
		assert.Equal(t, []string{"fr", "en"}, cfg.Languages)
		assert.Equal(t, 3000, cfg.Port)
	})

	t.Run("environment over yaml", func(t *testing.T) {
		unsetTestEnv(t)
		t.Setenv("CONFIG_TEST_LOCALE", "es_ES")

		var cfg testConfig
		require.NoError(t, config.LoadFile("testdata/config.yaml", &cfg))

		assert.Equal(t, "es_ES", cfg.Locale)
		assert.Equal(t, "Europe/Paris", cfg.Timezone)
	})

	t.Run("empty path", func(t *testing.T) {
		unsetTestEnv(t)

		var cfg testConfig
		require.NoError(t, config.LoadFile("", &cfg))
		assert.Equal(t, "en", cfg.Locale)
	})

	t.Run("missing file", func(t *testing.T) {
		unsetTestEnv(t)

		var cfg testConfig
		err := config.LoadFile("testdata/missing.yaml", &cfg)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		unsetTestEnv(t)

		var cfg testConfig
		require.ErrorIs(t, config.LoadFile("testdata/invalid.yaml", &cfg), config.ErrParsingConfig)
	})
}
