package i18n

import "errors"

var (
	ErrInvalidLocale   = errors.New("i18n: invalid locale")
	ErrInvalidTimezone = errors.New("i18n: invalid timezone")
	ErrCatalogParse    = errors.New("i18n: malformed catalog")
	ErrFormatMismatch  = errors.New("i18n: translation does not match format variables")
	ErrEmptyDomain     = errors.New("i18n: domain cannot be empty")
	ErrNilResolver     = errors.New("i18n: locale resolver cannot be nil")
	ErrInvalidPattern  = errors.New("i18n: invalid number pattern")
)
