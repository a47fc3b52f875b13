package i18n

// FormatEnUS returns a LocaleFormat configured for US English (en-US).
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatEnGB returns a LocaleFormat configured for British English (en-GB).
func FormatEnGB() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayouts("02/01/2006", "2 Jan 2006", "2 January 2006", "Monday, 2 January 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
	)
}

// FormatDeDE returns a LocaleFormat configured for German (de-DE).
func FormatDeDE() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayouts("02.01.06", "02.01.2006", "2. January 2006", "Monday, 2. January 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimeSeparator(", "),
		WithCurrencyPosition("after", true),
		WithNames(
			[12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
			[12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
			[7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
			[7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		),
	)
}

// FormatFrFR returns a LocaleFormat configured for French (fr-FR).
func FormatFrFR() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayouts("02/01/2006", "2 Jan 2006", "2 January 2006", "Monday 2 January 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimeSeparator(" "),
		WithCurrencyPosition("after", true),
		WithNames(
			[12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
			[12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
			[7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
			[7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		),
	)
}

// FormatEsES returns a LocaleFormat configured for Spanish (es-ES).
func FormatEsES() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayouts("2/1/06", "2 Jan 2006", "2 de January de 2006", "Monday, 2 de January de 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithCurrencyPosition("after", true),
		WithNames(
			[12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
			[12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
			[7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
			[7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		),
	)
}

// FormatPtBR returns a LocaleFormat configured for Brazilian Portuguese (pt-BR).
func FormatPtBR() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayouts("02/01/2006", "2 de Jan de 2006", "2 de January de 2006", "Monday, 2 de January de 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimeSeparator(" "),
		WithCurrencyPosition("before", true),
		WithNames(
			[12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
			[12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
			[7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
			[7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		),
	)
}

// FormatTrTR returns a LocaleFormat configured for Turkish (tr-TR).
func FormatTrTR() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayouts("2.01.2006", "2 Jan 2006", "2 January 2006", "2 January 2006 Monday"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimeSeparator(" "),
		WithCurrencyPosition("before", false),
		WithNames(
			[12]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
			[12]string{"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"},
			[7]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"},
			[7]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"},
		),
	)
}

// FormatPlPL returns a LocaleFormat configured for Polish (pl-PL).
func FormatPlPL() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayouts("02.01.2006", "2 Jan 2006", "2 January 2006", "Monday, 2 January 2006"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimeSeparator(", "),
		WithCurrencyPosition("after", true),
		WithNames(
			[12]string{"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca", "lipca", "sierpnia", "września", "października", "listopada", "grudnia"},
			[12]string{"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"},
			[7]string{"niedziela", "poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota"},
			[7]string{"niedz.", "pon.", "wt.", "śr.", "czw.", "pt.", "sob."},
		),
	)
}

// FormatRuRU returns a LocaleFormat configured for Russian (ru-RU).
func FormatRuRU() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayouts("02.01.2006", "2 Jan 2006 г.", "2 January 2006 г.", "Monday, 2 January 2006 г."),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"),
		WithDateTimeSeparator(", "),
		WithCurrencyPosition("after", true),
		WithNames(
			[12]string{"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"},
			[12]string{"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."},
			[7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
			[7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		),
	)
}

// FormatJaJP returns a LocaleFormat configured for Japanese (ja-JP).
func FormatJaJP() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayouts("2006/01/02", "2006/01/02", "2006年1月2日", "2006年1月2日Monday"),
		WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15時04分05秒 MST"),
		WithDateTimeSeparator(" "),
		WithNames(
			[12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
			[12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
			[7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
			[7]string{"日", "月", "火", "水", "木", "金", "土"},
		),
	)
}

// FormatZhCN returns a LocaleFormat configured for Simplified Chinese (zh-CN).
func FormatZhCN() *LocaleFormat {
	return NewLocaleFormat(
		WithDateLayouts("2006/1/2", "2006年1月2日", "2006年1月2日", "2006年1月2日Monday"),
		WithTimeLayouts("15:04", "15:04:05", "MST 15:04:05", "MST 15:04:05"),
		WithDateTimeSeparator(" "),
		WithNames(
			[12]string{"一月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"},
			[12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
			[7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
			[7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
		),
	)
}

// FormatFor returns the preset matching a locale: its language and region
// first, then its language. Locales without a preset format like US English.
func FormatFor(l Locale) *LocaleFormat {
	if l.Language() == "en" && l.Region() == "GB" {
		return FormatEnGB()
	}
	if preset, ok := formatPresets[l.Language()]; ok {
		return preset()
	}
	return FormatEnUS()
}

var formatPresets = map[string]func() *LocaleFormat{
	"en": FormatEnUS,
	"de": FormatDeDE,
	"fr": FormatFrFR,
	"es": FormatEsES,
	"pt": FormatPtBR,
	"tr": FormatTrTR,
	"pl": FormatPlPL,
	"ru": FormatRuRU,
	"ja": FormatJaJP,
	"zh": FormatZhCN,
}
