package i18n_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

func TestCompilePluralForms(t *testing.T) {
	t.Parallel()

	t.Run("germanic", func(t *testing.T) {
		t.Parallel()

		rule, err := i18n.CompilePluralForms("nplurals=2; plural=(n != 1);")
		require.NoError(t, err)
		for n, expected := range map[int]int{0: 1, 1: 0, 2: 1, 21: 1, -1: 0} {
			assert.Equal(t, expected, rule(n), "n=%d", n)
		}
	})

	t.Run("slavic", func(t *testing.T) {
		t.Parallel()

		rule, err := i18n.CompilePluralForms("nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);")
		require.NoError(t, err)

		tests := []struct {
			n        int
			expected int
		}{
			{1, 0}, {21, 0}, {11, 2}, {2, 1}, {4, 1}, {22, 1}, {12, 2}, {5, 2}, {0, 2}, {100, 2},
		}
		for _, tt := range tests {
			t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
				assert.Equal(t, tt.expected, rule(tt.n))
			})
		}
	})

	t.Run("no plurals", func(t *testing.T) {
		t.Parallel()

		rule, err := i18n.CompilePluralForms("nplurals=1; plural=0;")
		require.NoError(t, err)
		assert.Equal(t, 0, rule(1))
		assert.Equal(t, 0, rule(5))
	})

	t.Run("index is clamped to nplurals", func(t *testing.T) {
		t.Parallel()

		rule, err := i18n.CompilePluralForms("nplurals=2; plural=(n==1 ? 0 : n==2 ? 1 : 2);")
		require.NoError(t, err)
		assert.Equal(t, 1, rule(5))
	})

	t.Run("counts beyond uint32", func(t *testing.T) {
		t.Parallel()

		germanic, err := i18n.CompilePluralForms("nplurals=2; plural=(n != 1);")
		require.NoError(t, err)
		assert.Equal(t, 1, germanic(1<<32+1))
		assert.Equal(t, 1, germanic(1<<32))
		assert.Equal(t, 1, germanic(-(1<<32 + 1)))
		assert.Equal(t, 1, germanic(math.MinInt))

		slavic, err := i18n.CompilePluralForms("nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);")
		require.NoError(t, err)
		assert.Equal(t, 0, slavic(1<<32+5))  // ends in 01
		assert.Equal(t, 2, slavic(1<<32+15)) // ends in 11
		assert.Equal(t, 1, slavic(1<<32+6))  // ends in 02
		assert.Equal(t, 2, slavic(1<<32+1))  // ends in 97
	})

	t.Run("invalid headers", func(t *testing.T) {
		t.Parallel()

		for _, header := range []string{
			"",
			"nplurals=2;",
			"nplurals=x; plural=(n != 1);",
			"nplurals=0; plural=(n != 1);",
			"nplurals=7; plural=(n != 1);",
		} {
			_, err := i18n.CompilePluralForms(header)
			require.ErrorIs(t, err, i18n.ErrCatalogParse, header)
		}
	})
}

func TestGermanicPluralForm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, i18n.GermanicPluralForm(1))
	assert.Equal(t, 1, i18n.GermanicPluralForm(0))
	assert.Equal(t, 1, i18n.GermanicPluralForm(2))
}

func TestPluralRuleForLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale   string
		n        int
		expected string
	}{
		{"en", 1, i18n.PluralOne},
		{"en", 0, i18n.PluralOther},
		{"de_DE", 2, i18n.PluralOther},
		{"fr", 0, i18n.PluralOne},
		{"fr", 2, i18n.PluralOther},
		{"pt_BR", 1, i18n.PluralOne},
		{"ru", 1, i18n.PluralOne},
		{"ru", 3, i18n.PluralFew},
		{"ru", 5, i18n.PluralMany},
		{"ru", 11, i18n.PluralMany},
		{"ru", 21, i18n.PluralOne},
		{"uk", 24, i18n.PluralFew},
		{"ja", 1, i18n.PluralOther},
		{"zh_Hans_CN", 2, i18n.PluralOther},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.locale, tt.n), func(t *testing.T) {
			t.Parallel()
			rule := i18n.PluralRuleForLanguage(i18n.MustParseLocale(tt.locale))
			assert.Equal(t, tt.expected, rule(tt.n))
		})
	}
}

func TestPluralCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, i18n.PluralCount("nplurals=3; plural=(n==1 ? 0 : n==2 ? 1 : 2);"))
	assert.Equal(t, 1, i18n.PluralCount(" nplurals = 1 ; plural=0;"))
	assert.Equal(t, 2, i18n.PluralCount(""))
	assert.Equal(t, 2, i18n.PluralCount("nplurals=two; plural=(n > 1);"))
}
