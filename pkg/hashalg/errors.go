package hashalg

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when a name does not map to a known algorithm.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
)
