package manifest

import "errors"

var (
	// ErrInvalidInfo is returned when a manifest descriptor cannot be parsed.
	ErrInvalidInfo = errors.New("invalid manifest info")

	// ErrUnknownConformance is returned for conformance names outside the known set.
	ErrUnknownConformance = errors.New("unknown conformance")

	// ErrUnsupportedCombination is returned when a conformance level is not
	// compatible with any of the requested manifest formats.
	ErrUnsupportedCombination = errors.New("unsupported conformance and manifest info combination")
)
