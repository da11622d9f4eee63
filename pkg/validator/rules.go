package validator

import (
	"fmt"
	"strings"
)

const msgRequired = "field is required"

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: msgRequired},
	}
}

// RequiredSlice validates that a slice has at least one element.
func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{Field: field, Message: msgRequired},
	}
}

// RequiredMap validates that a map has at least one entry.
func RequiredMap[K comparable, V any](field string, value map[K]V) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{Field: field, Message: "must contain at least one entry"},
	}
}

// ExactlyOne validates that exactly one of the named values is set.
// Field names in the error are joined with "/".
func ExactlyOne(fields []string, present ...bool) Rule {
	name := strings.Join(fields, "/")
	return Rule{
		Check: func() bool {
			count := 0
			for _, p := range present {
				if p {
					count++
				}
			}
			return count == 1
		},
		Error: ValidationError{
			Field:   name,
			Message: fmt.Sprintf("exactly one of %s must be provided", strings.Join(fields, ", ")),
		},
	}
}

// Custom wraps an arbitrary check.
func Custom(field, message string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{Field: field, Message: message},
	}
}
