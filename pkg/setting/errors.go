package setting

import "errors"

var (
	// ErrUnknownSource is returned when a source name cannot be parsed.
	ErrUnknownSource = errors.New("unknown setting source")
)
