package babel

import (
	"context"
	"fmt"
	"html/template"
	"slices"
	"time"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

// Formatter returns a formatter for the locale and timezone of ctx.
func (b *Babel) Formatter(ctx context.Context) (*i18n.Formatter, error) {
	locale, err := b.Locale(ctx)
	if err != nil {
		return nil, err
	}
	tz, err := b.Timezone(ctx)
	if err != nil {
		return nil, err
	}
	return i18n.NewFormatter(locale, tz), nil
}

// layout resolves format for one kind of value ("datetime", "date" or
// "time"): an empty format takes the configured default style, and a
// style with a "<kind>.<style>" entry is replaced by that layout.
func (b *Babel) layout(kind, format string) string {
	if format == "" {
		format = b.dateFormats[kind]
	}
	if slices.Contains(i18n.Styles, format) {
		if custom, ok := b.dateFormats[kind+"."+format]; ok {
			return custom
		}
	}
	return format
}

// FormatDateTime formats t as date and time in the user's timezone.
// format is a style name, a Go layout or empty for the configured default.
func (b *Babel) FormatDateTime(ctx context.Context, t time.Time, format string) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.FormatDateTime(t, b.layout("datetime", format)), nil
}

// FormatDate formats the date part of t in the user's timezone.
func (b *Babel) FormatDate(ctx context.Context, t time.Time, format string) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.FormatDate(t, b.layout("date", format)), nil
}

// FormatTime formats the time part of t in the user's timezone.
func (b *Babel) FormatTime(ctx context.Context, t time.Time, format string) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.FormatTime(t, b.layout("time", format)), nil
}

// FormatTimedelta renders d as an approximate time span such as "3 hours".
func (b *Babel) FormatTimedelta(ctx context.Context, d time.Duration, opts i18n.TimedeltaOptions) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.FormatTimedelta(d, opts), nil
}

// FormatNumber formats a number with the locale's separators.
func (b *Babel) FormatNumber(ctx context.Context, v any) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.FormatNumber(v), nil
}

// FormatDecimal formats a number using a decimal pattern such as "#,##0.00".
func (b *Babel) FormatDecimal(ctx context.Context, v any, pattern string) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.FormatDecimal(v, pattern)
}

// FormatCurrency formats an amount of the currency with the given ISO 4217 code.
func (b *Babel) FormatCurrency(ctx context.Context, amount float64, code string) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.FormatCurrency(amount, code)
}

// FormatPercent formats a ratio as a percentage.
func (b *Babel) FormatPercent(ctx context.Context, v any) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.FormatPercent(v), nil
}

// FormatScientific formats a number in scientific notation.
func (b *Babel) FormatScientific(ctx context.Context, v any) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.FormatScientific(v), nil
}

// ToUserTimezone converts t to the timezone of ctx. Times without zone
// information are treated as UTC.
func (b *Babel) ToUserTimezone(ctx context.Context, t time.Time) (time.Time, error) {
	tz, err := b.Timezone(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return i18n.ToUserTimezone(t, tz), nil
}

// ToUTC interprets the wall clock of t in the timezone of ctx and returns
// the same instant in UTC.
func (b *Babel) ToUTC(ctx context.Context, t time.Time) (time.Time, error) {
	tz, err := b.Timezone(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return i18n.ToUTC(t, tz), nil
}

// FuncMap returns html/template functions bound to ctx.
//
// Translation functions take interpolation variables as key/value pairs:
//
//	{{ gettext "Hello %(name)s!" "name" .User.Name }}
//	{{ ngettext "%(num)s Apple" "%(num)s Apples" .Count }}
//	{{ datetimeformat .CreatedAt "short" }}
//	{{ currencyformat .Price "EUR" }}
func (b *Babel) FuncMap(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"gettext": func(msg string, kv ...any) (string, error) {
			vars, err := pairs(kv)
			if err != nil {
				return "", err
			}
			return b.Gettext(ctx, msg, vars...)
		},
		"ngettext": func(singular, plural string, n int, kv ...any) (string, error) {
			vars, err := pairs(kv)
			if err != nil {
				return "", err
			}
			return b.NGettext(ctx, singular, plural, n, vars...)
		},
		"pgettext": func(msgctxt, msg string, kv ...any) (string, error) {
			vars, err := pairs(kv)
			if err != nil {
				return "", err
			}
			return b.PGettext(ctx, msgctxt, msg, vars...)
		},
		"npgettext": func(msgctxt, singular, plural string, n int, kv ...any) (string, error) {
			vars, err := pairs(kv)
			if err != nil {
				return "", err
			}
			return b.NPGettext(ctx, msgctxt, singular, plural, n, vars...)
		},
		"datetimeformat": func(t time.Time, format ...string) (string, error) {
			return b.FormatDateTime(ctx, t, first(format))
		},
		"dateformat": func(t time.Time, format ...string) (string, error) {
			return b.FormatDate(ctx, t, first(format))
		},
		"timeformat": func(t time.Time, format ...string) (string, error) {
			return b.FormatTime(ctx, t, first(format))
		},
		"timedeltaformat": func(d time.Duration, granularity ...string) (string, error) {
			return b.FormatTimedelta(ctx, d, i18n.TimedeltaOptions{Granularity: first(granularity)})
		},
		"numberformat": func(v any) (string, error) {
			return b.FormatNumber(ctx, v)
		},
		"decimalformat": func(v any, pattern ...string) (string, error) {
			return b.FormatDecimal(ctx, v, first(pattern))
		},
		"currencyformat": func(amount float64, code string) (string, error) {
			return b.FormatCurrency(ctx, amount, code)
		},
		"percentformat": func(v any) (string, error) {
			return b.FormatPercent(ctx, v)
		},
		"scientificformat": func(v any) (string, error) {
			return b.FormatScientific(ctx, v)
		},
	}
}

// pairs turns template arguments "key", value, ... into variables.
func pairs(kv []any) ([]i18n.M, error) {
	if len(kv) == 0 {
		return nil, nil
	}
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of variable arguments", i18n.ErrFormatMismatch)
	}
	vars := make(i18n.M, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: variable name %v is not a string", i18n.ErrFormatMismatch, kv[i])
		}
		vars[key] = kv[i+1]
	}
	return []i18n.M{vars}, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
