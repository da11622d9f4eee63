// Package sanitizer provides small, stateless helpers for constraining numeric
// values and normalising path strings.
//
//   - Numeric: generic capping, including a variant that substitutes a
//     default for non-positive input instead of raising it.
//   - Paths: separator normalisation and joining that never touch the
//     filesystem.
//
// None of the helpers returns an error; they always produce a usable value.
package sanitizer
