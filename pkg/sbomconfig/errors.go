package sbomconfig

import "errors"

var (
	// ErrValidation is returned when a configuration is missing required
	// values or combines incompatible ones.
	ErrValidation = errors.New("invalid configuration")

	// ErrNilConfiguration is returned when Sanitize is called without a configuration.
	ErrNilConfiguration = errors.New("configuration is nil")

	// ErrUnknownAction is returned when an action name cannot be parsed.
	ErrUnknownAction = errors.New("unknown manifest tool action")
)
