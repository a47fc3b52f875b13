package i18n_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input      string
		expected   string
		language   string
		region     string
		candidates []string
	}{
		{input: "de_DE", expected: "de_DE", language: "de", region: "DE", candidates: []string{"de_DE", "de"}},
		{input: "de-DE", expected: "de_DE", language: "de", region: "DE", candidates: []string{"de_DE", "de"}},
		{input: "DE-de", expected: "de_DE", language: "de", region: "DE", candidates: []string{"de_DE", "de"}},
		{input: "en", expected: "en", language: "en", candidates: []string{"en"}},
		{input: "de_DE.UTF-8", expected: "de_DE", language: "de", region: "DE", candidates: []string{"de_DE", "de"}},
		{input: "zh_Hans_CN", expected: "zh_Hans_CN", language: "zh", region: "CN", candidates: []string{"zh_Hans_CN", "zh_CN", "zh"}},
		{input: " pt_BR ", expected: "pt_BR", language: "pt", region: "BR", candidates: []string{"pt_BR", "pt"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			l, err := i18n.ParseLocale(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.String())
			assert.Equal(t, tt.language, l.Language())
			assert.Equal(t, tt.region, l.Region())
			assert.Equal(t, tt.candidates, l.Candidates())
			assert.False(t, l.IsZero())
		})
	}
}

func TestParseLocale_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "not a locale", "de_DE_xx_yy_zz!", "und", "toolonglanguage"} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := i18n.ParseLocale(input)
			require.ErrorIs(t, err, i18n.ErrInvalidLocale)
		})
	}

	assert.Panics(t, func() { i18n.MustParseLocale("!!") })
}

func TestLocale_Text(t *testing.T) {
	t.Parallel()

	var payload struct {
		Locale i18n.Locale `json:"locale"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"locale":"de-AT"}`), &payload))
	assert.Equal(t, "de_AT", payload.Locale.String())
	assert.True(t, payload.Locale.Equal(i18n.MustParseLocale("de_AT")))

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"locale":"de_AT"}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"locale":"??"}`), &payload))
}

func TestTimezone(t *testing.T) {
	t.Parallel()

	t.Run("parse", func(t *testing.T) {
		t.Parallel()

		loc, err := i18n.ParseTimezone("Europe/Vienna")
		require.NoError(t, err)
		assert.Equal(t, "Europe/Vienna", loc.String())

		_, err = i18n.ParseTimezone("Mars/Olympus")
		require.ErrorIs(t, err, i18n.ErrInvalidTimezone)

		_, err = i18n.ParseTimezone("")
		require.ErrorIs(t, err, i18n.ErrInvalidTimezone)
	})

	t.Run("conversions", func(t *testing.T) {
		t.Parallel()

		vienna := i18n.MustParseTimezone("Europe/Vienna")
		utc := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

		local := i18n.ToUserTimezone(utc, vienna)
		assert.Equal(t, 13, local.Hour())
		assert.True(t, local.Equal(utc))

		wall := time.Date(2024, time.January, 15, 13, 0, 0, 0, time.UTC)
		assert.True(t, utc.Equal(i18n.ToUTC(wall, vienna)))
	})
}
