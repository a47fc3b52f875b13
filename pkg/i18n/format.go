package i18n

import (
	"maps"
	"strings"
)

// Named format styles for dates and times.
const (
	StyleShort  = "short"
	StyleMedium = "medium"
	StyleLong   = "long"
	StyleFull   = "full"
)

// Styles lists the named styles from shortest to longest.
var Styles = []string{StyleShort, StyleMedium, StyleLong, StyleFull}

// LocaleFormat holds the locale data that golang.org/x/text does not cover:
// date and time layouts per style, month and weekday names, and where the
// currency symbol goes. It is immutable after creation and safe for
// concurrent use.
type LocaleFormat struct {
	dateLayouts     map[string]string
	timeLayouts     map[string]string
	dateTimeSep     string
	currencyAfter   bool
	currencySpace   bool
	currencySymbols map[string]string
	names           *strings.Replacer
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a LocaleFormat. Without options it formats like
// US English.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		dateLayouts: map[string]string{
			StyleShort:  "1/2/06",
			StyleMedium: "Jan 2, 2006",
			StyleLong:   "January 2, 2006",
			StyleFull:   "Monday, January 2, 2006",
		},
		timeLayouts: map[string]string{
			StyleShort:  "3:04 PM",
			StyleMedium: "3:04:05 PM",
			StyleLong:   "3:04:05 PM MST",
			StyleFull:   "3:04:05 PM MST",
		},
		dateTimeSep:     ", ",
		currencySymbols: defaultCurrencySymbols,
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// WithDateLayouts sets the Go layouts of the short, medium, long and full date styles.
func WithDateLayouts(short, medium, long, full string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateLayouts = map[string]string{StyleShort: short, StyleMedium: medium, StyleLong: long, StyleFull: full}
	}
}

// WithTimeLayouts sets the Go layouts of the short, medium, long and full time styles.
func WithTimeLayouts(short, medium, long, full string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeLayouts = map[string]string{StyleShort: short, StyleMedium: medium, StyleLong: long, StyleFull: full}
	}
}

// WithDateTimeSeparator sets the text between date and time in datetime styles.
func WithDateTimeSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateTimeSep = sep
	}
}

// WithCurrencyPosition sets the currency position ("before" or "after")
// and whether a space separates symbol and amount.
func WithCurrencyPosition(pos string, space bool) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if pos == "before" || pos == "after" {
			lf.currencyAfter = pos == "after"
		}
		lf.currencySpace = space
	}
}

// WithCurrencySymbol overrides the symbol of one ISO 4217 currency code.
func WithCurrencySymbol(code, symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		symbols := maps.Clone(lf.currencySymbols)
		symbols[strings.ToUpper(code)] = symbol
		lf.currencySymbols = symbols
	}
}

// WithNames localizes month and weekday names. Each list is in calendar
// order: January first, Sunday first.
func WithNames(months, monthsAbbr [12]string, weekdays, weekdaysAbbr [7]string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		pairs := make([]string, 0, 2*(12+12+7+7))
		// Full names come first so "January" is not matched as "Jan".
		for i, m := range months {
			pairs = append(pairs, englishMonths[i], m)
		}
		for i, d := range weekdays {
			pairs = append(pairs, englishWeekdays[i], d)
		}
		for i, m := range monthsAbbr {
			pairs = append(pairs, englishMonths[i][:3], m)
		}
		for i, d := range weekdaysAbbr {
			pairs = append(pairs, englishWeekdays[i][:3], d)
		}
		lf.names = strings.NewReplacer(pairs...)
	}
}

var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var englishWeekdays = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var defaultCurrencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"INR": "₹",
	"RUB": "₽",
	"UAH": "₴",
	"TRY": "₺",
	"PLN": "zł",
	"BRL": "R$",
}

// DateLayout returns the Go layout of a named date style.
func (lf *LocaleFormat) DateLayout(style string) (string, bool) {
	l, ok := lf.dateLayouts[style]
	return l, ok
}

// TimeLayout returns the Go layout of a named time style.
func (lf *LocaleFormat) TimeLayout(style string) (string, bool) {
	l, ok := lf.timeLayouts[style]
	return l, ok
}

// DateTimeLayout joins the date and time layouts of a style.
func (lf *LocaleFormat) DateTimeLayout(style string) (string, bool) {
	d, ok := lf.dateLayouts[style]
	if !ok {
		return "", false
	}
	t, ok := lf.timeLayouts[style]
	if !ok {
		return "", false
	}
	return d + lf.dateTimeSep + t, true
}

// CurrencySymbol returns the display symbol of an ISO 4217 code, or the
// code itself when no symbol is known.
func (lf *LocaleFormat) CurrencySymbol(code string) string {
	if s, ok := lf.currencySymbols[strings.ToUpper(code)]; ok {
		return s
	}
	return strings.ToUpper(code)
}

// placeCurrency puts symbol around an already formatted amount.
func (lf *LocaleFormat) placeCurrency(symbol, amount string) string {
	sep := ""
	if lf.currencySpace || isAlphaSymbol(symbol) {
		sep = " "
	}
	if lf.currencyAfter {
		return amount + sep + symbol
	}
	return symbol + sep + amount
}

func isAlphaSymbol(s string) bool {
	if len(s) < 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// localize replaces English month and weekday names produced by
// time.Format with the locale's names.
func (lf *LocaleFormat) localize(s string) string {
	if lf.names == nil {
		return s
	}
	return lf.names.Replace(s)
}
