package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		vars     i18n.M
		expected string
	}{
		{name: "no conversions", template: "Hello, World!", vars: i18n.M{"x": 1}, expected: "Hello, World!"},
		{name: "string", template: "Hello %(name)s!", vars: i18n.M{"name": "Anna"}, expected: "Hello Anna!"},
		{name: "number as string", template: "%(num)s Äpfel", vars: i18n.M{"num": 3}, expected: "3 Äpfel"},
		{name: "integer", template: "%(num)d items", vars: i18n.M{"num": 42}, expected: "42 items"},
		{name: "float truncated by d", template: "%(num)d", vars: i18n.M{"num": 3.9}, expected: "3"},
		{name: "precision", template: "%(price).2f EUR", vars: i18n.M{"price": 9.5}, expected: "9.50 EUR"},
		{name: "default float precision", template: "%(v)f", vars: i18n.M{"v": 1}, expected: "1.000000"},
		{name: "width and zero padding", template: "[%(n)05d]", vars: i18n.M{"n": 42}, expected: "[00042]"},
		{name: "left aligned", template: "[%(s)-5s]", vars: i18n.M{"s": "ab"}, expected: "[ab   ]"},
		{name: "literal percent", template: "%(p)d%% done", vars: i18n.M{"p": 50}, expected: "50% done"},
		{name: "hex", template: "%(n)x", vars: i18n.M{"n": 255}, expected: "ff"},
		{name: "repeated variable", template: "%(a)s-%(a)s", vars: i18n.M{"a": "x"}, expected: "x-x"},
		{name: "character", template: "%(c)c", vars: i18n.M{"c": 65}, expected: "A"},
		{name: "unused variables ignored", template: "%(a)s", vars: i18n.M{"a": "x", "b": "y"}, expected: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := i18n.Interpolate(tt.template, tt.vars)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestInterpolate_Mismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		vars     i18n.M
	}{
		{name: "missing variable", template: "Hello %(name)s", vars: i18n.M{"other": 1}},
		{name: "unnamed conversion", template: "Hello %s", vars: i18n.M{"name": "x"}},
		{name: "string for integer", template: "%(num)d", vars: i18n.M{"num": "three"}},
		{name: "string for float", template: "%(v).2f", vars: i18n.M{"v": "x"}},
		{name: "unknown conversion", template: "%(v)y", vars: i18n.M{"v": 1}},
		{name: "unterminated name", template: "%(name", vars: i18n.M{"name": 1}},
		{name: "trailing percent", template: "100%", vars: i18n.M{"a": 1}},
		{name: "incomplete conversion", template: "%(name)", vars: i18n.M{"name": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := i18n.Interpolate(tt.template, tt.vars)
			require.ErrorIs(t, err, i18n.ErrFormatMismatch)
		})
	}
}
