package i18n

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats numbers, currency amounts, dates and time spans for
// one locale and timezone. Numbers are rendered by golang.org/x/text,
// names and layouts come from the locale's LocaleFormat.
type Formatter struct {
	locale  Locale
	tz      *time.Location
	printer *message.Printer
	format  *LocaleFormat
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithLocaleFormat replaces the preset chosen by FormatFor.
func WithLocaleFormat(lf *LocaleFormat) FormatterOption {
	return func(f *Formatter) {
		if lf != nil {
			f.format = lf
		}
	}
}

// NewFormatter creates a formatter for locale. Dates and times are
// converted to tz before formatting; a nil tz means UTC.
func NewFormatter(locale Locale, tz *time.Location, opts ...FormatterOption) *Formatter {
	if tz == nil {
		tz = time.UTC
	}
	f := &Formatter{
		locale:  locale,
		tz:      tz,
		printer: message.NewPrinter(locale.Tag()),
		format:  FormatFor(locale),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Locale returns the formatter's locale.
func (f *Formatter) Locale() Locale { return f.locale }

// Timezone returns the formatter's timezone.
func (f *Formatter) Timezone() *time.Location { return f.tz }

// FormatNumber formats an integer or floating point number with the
// locale's grouping and decimal separators.
func (f *Formatter) FormatNumber(v any) string {
	return f.printer.Sprint(number.Decimal(v))
}

// FormatDecimal formats v using a pattern such as "#,##0.00". Zeros are
// required digits, hashes optional ones and a comma enables grouping.
// An empty pattern behaves like FormatNumber.
func (f *Formatter) FormatDecimal(v any, pattern string) (string, error) {
	opts, err := decimalOptions(pattern)
	if err != nil {
		return "", err
	}
	return f.printer.Sprint(number.Decimal(v, opts...)), nil
}

// FormatPercent formats a ratio as a percentage: 0.25 becomes "25%".
func (f *Formatter) FormatPercent(v any) string {
	return f.printer.Sprint(number.Percent(v))
}

// FormatScientific formats v in scientific notation with all of its
// significant digits: 12345 becomes "1.2345×10⁴".
func (f *Formatter) FormatScientific(v any) string {
	x, ok := toFloat(v)
	if !ok {
		return f.printer.Sprint(number.Scientific(v))
	}
	return f.printer.Sprint(number.Scientific(v, number.Precision(significantDigits(x))))
}

// significantDigits counts the digits of the shortest representation of x.
func significantDigits(x float64) int {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 1
	}
	mantissa, _, _ := strings.Cut(strconv.FormatFloat(math.Abs(x), 'e', -1, 64), "e")
	return max(1, len(strings.ReplaceAll(mantissa, ".", "")))
}

// FormatCurrency formats amount in the currency with the given ISO 4217
// code, using the currency's standard number of decimals. Unknown codes
// return the error of golang.org/x/text/currency.
func (f *Formatter) FormatCurrency(amount float64, code string) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", err
	}

	scale, _ := currency.Standard.Rounding(unit)
	digits := f.printer.Sprint(number.Decimal(math.Abs(amount), number.Scale(scale)))
	out := f.format.placeCurrency(f.format.CurrencySymbol(unit.String()), digits)
	if amount < 0 {
		out = "-" + out
	}
	return out, nil
}

// FormatDate formats the date part of t. format is a style name (short,
// medium, long, full) or a Go layout; empty means medium.
func (f *Formatter) FormatDate(t time.Time, format string) string {
	return f.formatTime(t, format, f.format.DateLayout)
}

// FormatTime formats the time part of t. format is a style name or a Go layout.
func (f *Formatter) FormatTime(t time.Time, format string) string {
	return f.formatTime(t, format, f.format.TimeLayout)
}

// FormatDateTime formats t as date and time. format is a style name or a Go layout.
func (f *Formatter) FormatDateTime(t time.Time, format string) string {
	return f.formatTime(t, format, f.format.DateTimeLayout)
}

func (f *Formatter) formatTime(t time.Time, format string, layoutFor func(string) (string, bool)) string {
	if format == "" {
		format = StyleMedium
	}
	layout := format
	if slices.Contains(Styles, format) {
		layout, _ = layoutFor(format)
	}
	return f.format.localize(t.In(f.tz).Format(layout))
}

// decimalOptions translates a decimal pattern into x/text number options.
func decimalOptions(pattern string) ([]number.Option, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, nil
	}

	intPart, fracPart, hasFrac := strings.Cut(pattern, ".")
	if intPart == "" || strings.Trim(intPart, "#,0") != "" || strings.Trim(fracPart, "#0") != "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}
	if hasFrac && fracPart == "" {
		return nil, fmt.Errorf("%w: %q has no fraction digits", ErrInvalidPattern, pattern)
	}
	if strings.Contains(strings.TrimLeft(fracPart, "0"), "0") {
		return nil, fmt.Errorf("%w: %q has required digits after optional ones", ErrInvalidPattern, pattern)
	}

	minInt := strings.Count(intPart, "0")
	minFrac := strings.Count(fracPart, "0")
	maxFrac := len(fracPart)

	opts := []number.Option{
		number.MinIntegerDigits(max(minInt, 1)),
		number.MinFractionDigits(minFrac),
		number.MaxFractionDigits(maxFrac),
	}
	if !strings.Contains(intPart, ",") {
		opts = append(opts, number.NoSeparator())
	}
	return opts, nil
}
