package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/logger"
)

type localeKey struct{}

func localeExtractor(ctx context.Context) (slog.Attr, bool) {
	if l, ok := ctx.Value(localeKey{}).(string); ok {
		return slog.String("locale", l), true
	}
	return slog.Attr{}, false
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			level, err := logger.ParseLevel(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, level)
		})
	}

	_, err := logger.ParseLevel("loud")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with extractor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.New(logger.Config{Level: "info", Format: "json", Output: &buf}, localeExtractor)
		require.NoError(t, err)

		ctx := context.WithValue(context.Background(), localeKey{}, "de_DE")
		log.InfoContext(ctx, "catalog loaded", slog.Int("messages", 3))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "catalog loaded", rec["msg"])
		assert.Equal(t, "de_DE", rec["locale"])
		assert.EqualValues(t, 3, rec["messages"])
	})

	t.Run("text respects level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.New(logger.Config{Level: "warn", Format: "text", Output: &buf})
		require.NoError(t, err)

		log.Info("hidden")
		log.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("extractor skipped without value", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.New(logger.Config{Format: "text", Output: &buf}, localeExtractor, nil)
		require.NoError(t, err)

		log.InfoContext(context.Background(), "plain")
		assert.NotContains(t, buf.String(), "locale=")
	})

	t.Run("attrs and groups keep extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.New(logger.Config{Format: "text", Output: &buf}, localeExtractor)
		require.NoError(t, err)

		ctx := context.WithValue(context.Background(), localeKey{}, "fr")
		log.With(slog.String("component", "loader")).InfoContext(ctx, "x")
		assert.Contains(t, buf.String(), "component=loader")
		assert.Contains(t, buf.String(), "locale=fr")
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		_, err := logger.New(logger.Config{Level: "loud"})
		require.Error(t, err)

		_, err = logger.New(logger.Config{Format: "xml"})
		require.Error(t, err)
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	assert.Same(t, log, logger.Default(log))
	assert.NotNil(t, logger.Default(nil))
}
