package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sbomkit/pkg/sanitizer"
)

func TestClampMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, sanitizer.ClampMax(3, 10))
	assert.Equal(t, 10, sanitizer.ClampMax(30, 10))
	assert.Equal(t, 2.5, sanitizer.ClampMax(7.5, 2.5))
}

func TestPositiveOrDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		expected int
	}{
		{name: "negative uses default", value: -4, expected: 30},
		{name: "zero uses default", value: 0, expected: 30},
		{name: "one is kept", value: 1, expected: 1},
		{name: "max is kept", value: 86400, expected: 86400},
		{name: "above max is capped", value: 86401, expected: 86400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.PositiveOrDefault(tt.value, 30, 86400))
		})
	}
}
