package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext/plurals"
)

// PluralForm maps a count to the index of a gettext plural form
// (msgstr[0], msgstr[1], ...).
type PluralForm func(n int) int

// MaxPluralForms bounds nplurals and the N of msgstr[N]. CLDR languages
// use at most six forms.
const MaxPluralForms = 6

// GermanicPluralForm is the gettext default rule: "plural=(n != 1)".
var GermanicPluralForm PluralForm = func(n int) int {
	if n == 1 {
		return 0
	}
	return 1
}

// CompilePluralForms compiles a Plural-Forms header value such as
// "nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);".
// The returned rule never yields an index outside [0, nplurals).
func CompilePluralForms(header string) (PluralForm, error) {
	var (
		nplurals = -1
		expr     string
	)
	for part := range strings.SplitSeq(header, ";") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "nplurals":
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n < 1 || n > MaxPluralForms {
				return nil, fmt.Errorf("%w: invalid nplurals in %q", ErrCatalogParse, header)
			}
			nplurals = n
		case "plural":
			expr = strings.TrimSpace(value)
		}
	}
	if expr == "" {
		return nil, fmt.Errorf("%w: missing plural expression in %q", ErrCatalogParse, header)
	}

	compiled, err := plurals.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: plural expression %q: %s", ErrCatalogParse, expr, err)
	}

	return func(n int) int {
		idx := compiled.Eval(pluralOperand(n))
		if nplurals > 0 && idx >= nplurals {
			return nplurals - 1
		}
		return idx
	}, nil
}

// pluralOperand maps a count to the unsigned operand of a plural
// expression. Counts beyond the uint32 range are reduced to a value that
// keeps n%10, n%100 and n%1000000 and is still greater than one.
func pluralOperand(n int) uint32 {
	u := uint64(n)
	if n < 0 {
		u = uint64(-(n + 1)) + 1
	}
	if u > math.MaxUint32 {
		u = u%1_000_000 + 1_000_000
	}
	return uint32(u)
}

// PluralCount returns the nplurals value of a Plural-Forms header, or 2
// when the header does not declare a valid one.
func PluralCount(header string) int {
	for part := range strings.SplitSeq(header, ";") {
		key, value, ok := strings.Cut(part, "=")
		if !ok || strings.TrimSpace(key) != "nplurals" {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
			return n
		}
	}
	return 2
}

// PluralRule determines the CLDR plural category of a count.
// It is used for locale data shipped with this package (unit names),
// translations from catalogs use PluralForm.
type PluralRule func(n int) string

// CLDR plural categories. Not all languages use all of them.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// OneOtherPluralRule covers English, German, Dutch, the Scandinavian languages,
// Spanish, Italian and Turkish for integer counts.
var OneOtherPluralRule PluralRule = func(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// FrenchPluralRule treats 0 and 1 as singular (French, Brazilian Portuguese).
var FrenchPluralRule PluralRule = func(n int) string {
	if abs(n) <= 1 {
		return PluralOne
	}
	return PluralOther
}

// SlavicPluralRule implements the rule shared by Russian, Ukrainian,
// Belarusian, Croatian and Serbian.
var SlavicPluralRule PluralRule = func(n int) string {
	n = abs(n)
	mod10, mod100 := n%10, n%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return PluralFew
	default:
		return PluralMany
	}
}

// NoPluralRule is used by languages without plural inflection
// (Japanese, Chinese, Korean, ...).
var NoPluralRule PluralRule = func(int) string {
	return PluralOther
}

// PluralRuleForLanguage returns the CLDR rule for a locale's language.
func PluralRuleForLanguage(l Locale) PluralRule {
	switch l.Language() {
	case "fr", "pt":
		return FrenchPluralRule
	case "ru", "uk", "be", "hr", "sr", "bs":
		return SlavicPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return NoPluralRule
	default:
		return OneOtherPluralRule
	}
}
