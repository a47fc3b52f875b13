package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment or a YAML file cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrNilPointer is returned when a nil pointer is provided to a loader.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
