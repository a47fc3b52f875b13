package strsync

import "errors"

var (
	// ErrSourceCatalog is returned when the source locale's catalog is missing or unreadable.
	ErrSourceCatalog = errors.New("strsync: source catalog")
	// ErrTemplate is returned when the catalog template is missing or unreadable.
	ErrTemplate = errors.New("strsync: template")
	// ErrInvalidDocument is returned when an export document cannot be decoded.
	ErrInvalidDocument = errors.New("strsync: invalid document")
)
