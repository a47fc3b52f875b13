package i18n

import (
	"math"
	"strings"
	"time"
)

// Time units used by FormatTimedelta, largest first.
const (
	UnitYear   = "year"
	UnitMonth  = "month"
	UnitWeek   = "week"
	UnitDay    = "day"
	UnitHour   = "hour"
	UnitMinute = "minute"
	UnitSecond = "second"
)

// DefaultTimedeltaThreshold is the fraction of a unit at which the next
// larger unit is used: 0.85 means 26 days are shown as "1 month".
const DefaultTimedeltaThreshold = 0.85

var timedeltaUnits = []struct {
	name    string
	seconds float64
}{
	{UnitYear, 3600 * 24 * 365},
	{UnitMonth, 3600 * 24 * 30},
	{UnitWeek, 3600 * 24 * 7},
	{UnitDay, 3600 * 24},
	{UnitHour, 3600},
	{UnitMinute, 60},
	{UnitSecond, 1},
}

// TimedeltaOptions controls FormatTimedelta.
type TimedeltaOptions struct {
	// Granularity is the smallest unit shown. Default: second.
	Granularity string
	// Threshold defaults to DefaultTimedeltaThreshold.
	Threshold float64
	// AddDirection renders "in 3 days" / "3 days ago" instead of "3 days".
	// Positive durations point to the future.
	AddDirection bool
}

// FormatTimedelta renders d as an approximate span in the largest fitting
// unit, such as "3 hours" or "vor 2 Tagen".
func (f *Formatter) FormatTimedelta(d time.Duration, opts TimedeltaOptions) string {
	granularity := opts.Granularity
	if granularity == "" {
		granularity = UnitSecond
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultTimedeltaThreshold
	}

	seconds := d.Seconds()
	for _, unit := range timedeltaUnits {
		value := math.Abs(seconds) / unit.seconds
		if value < threshold && unit.name != granularity {
			continue
		}
		if unit.name == granularity && value > 0 {
			value = math.Max(1, value)
		}
		n := int(math.RoundToEven(value))

		pattern := f.unitPattern(unit.name, n, opts.AddDirection, seconds >= 0)
		return strings.ReplaceAll(pattern, "{0}", f.printer.Sprint(n))
	}
	return ""
}

func (f *Formatter) unitPattern(unit string, n int, direction, future bool) string {
	data, ok := unitData[f.locale.Language()]
	if !ok {
		data = unitData["en"]
	}
	category := PluralRuleForLanguage(f.locale)(n)

	patterns := data.plain
	if direction {
		patterns = data.past
		if future {
			patterns = data.future
		}
	}

	forms := patterns[unit]
	if p, ok := forms[category]; ok {
		return p
	}
	if p, ok := forms[PluralOther]; ok {
		return p
	}
	return "{0} " + unit + "s"
}

type unitPatterns map[string]map[string]string

type localeUnits struct {
	plain, future, past unitPatterns
}

// oneOther builds one/other patterns for every unit from a template
// containing "%s" for the unit name.
func oneOther(template string, names map[string][2]string) unitPatterns {
	out := make(unitPatterns, len(names))
	for unit, forms := range names {
		out[unit] = map[string]string{
			PluralOne:   strings.Replace(template, "%s", forms[0], 1),
			PluralOther: strings.Replace(template, "%s", forms[1], 1),
		}
	}
	return out
}

var (
	englishUnits = map[string][2]string{
		UnitYear: {"year", "years"}, UnitMonth: {"month", "months"}, UnitWeek: {"week", "weeks"},
		UnitDay: {"day", "days"}, UnitHour: {"hour", "hours"}, UnitMinute: {"minute", "minutes"},
		UnitSecond: {"second", "seconds"},
	}
	germanUnits = map[string][2]string{
		UnitYear: {"Jahr", "Jahre"}, UnitMonth: {"Monat", "Monate"}, UnitWeek: {"Woche", "Wochen"},
		UnitDay: {"Tag", "Tage"}, UnitHour: {"Stunde", "Stunden"}, UnitMinute: {"Minute", "Minuten"},
		UnitSecond: {"Sekunde", "Sekunden"},
	}
	germanDativeUnits = map[string][2]string{
		UnitYear: {"Jahr", "Jahren"}, UnitMonth: {"Monat", "Monaten"}, UnitWeek: {"Woche", "Wochen"},
		UnitDay: {"Tag", "Tagen"}, UnitHour: {"Stunde", "Stunden"}, UnitMinute: {"Minute", "Minuten"},
		UnitSecond: {"Sekunde", "Sekunden"},
	}
	frenchUnits = map[string][2]string{
		UnitYear: {"an", "ans"}, UnitMonth: {"mois", "mois"}, UnitWeek: {"semaine", "semaines"},
		UnitDay: {"jour", "jours"}, UnitHour: {"heure", "heures"}, UnitMinute: {"minute", "minutes"},
		UnitSecond: {"seconde", "secondes"},
	}
	spanishUnits = map[string][2]string{
		UnitYear: {"año", "años"}, UnitMonth: {"mes", "meses"}, UnitWeek: {"semana", "semanas"},
		UnitDay: {"día", "días"}, UnitHour: {"hora", "horas"}, UnitMinute: {"minuto", "minutos"},
		UnitSecond: {"segundo", "segundos"},
	}
)

// slavic builds one/few/many patterns from a template and three forms per unit.
func slavic(template string, names map[string][3]string) unitPatterns {
	out := make(unitPatterns, len(names))
	for unit, forms := range names {
		out[unit] = map[string]string{
			PluralOne:  strings.Replace(template, "%s", forms[0], 1),
			PluralFew:  strings.Replace(template, "%s", forms[1], 1),
			PluralMany: strings.Replace(template, "%s", forms[2], 1),
		}
	}
	return out
}

var russianUnits = map[string][3]string{
	UnitYear: {"год", "года", "лет"}, UnitMonth: {"месяц", "месяца", "месяцев"},
	UnitWeek: {"неделя", "недели", "недель"}, UnitDay: {"день", "дня", "дней"},
	UnitHour: {"час", "часа", "часов"}, UnitMinute: {"минута", "минуты", "минут"},
	UnitSecond: {"секунда", "секунды", "секунд"},
}

var russianAccusativeUnits = map[string][3]string{
	UnitYear: {"год", "года", "лет"}, UnitMonth: {"месяц", "месяца", "месяцев"},
	UnitWeek: {"неделю", "недели", "недель"}, UnitDay: {"день", "дня", "дней"},
	UnitHour: {"час", "часа", "часов"}, UnitMinute: {"минуту", "минуты", "минут"},
	UnitSecond: {"секунду", "секунды", "секунд"},
}

var unitData = map[string]localeUnits{
	"en": {
		plain:  oneOther("{0} %s", englishUnits),
		future: oneOther("in {0} %s", englishUnits),
		past:   oneOther("{0} %s ago", englishUnits),
	},
	"de": {
		plain:  oneOther("{0} %s", germanUnits),
		future: oneOther("in {0} %s", germanDativeUnits),
		past:   oneOther("vor {0} %s", germanDativeUnits),
	},
	"fr": {
		plain:  oneOther("{0} %s", frenchUnits),
		future: oneOther("dans {0} %s", frenchUnits),
		past:   oneOther("il y a {0} %s", frenchUnits),
	},
	"es": {
		plain:  oneOther("{0} %s", spanishUnits),
		future: oneOther("dentro de {0} %s", spanishUnits),
		past:   oneOther("hace {0} %s", spanishUnits),
	},
	"ru": {
		plain:  slavic("{0} %s", russianUnits),
		future: slavic("через {0} %s", russianAccusativeUnits),
		past:   slavic("{0} %s назад", russianAccusativeUnits),
	},
}
