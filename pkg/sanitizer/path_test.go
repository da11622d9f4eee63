package sanitizer_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sbomkit/pkg/sanitizer"
)

func TestNormalizeSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		goos     string
		expected string
	}{
		{name: "linux converts backslashes", input: `C:\drop\_manifest`, goos: "linux", expected: "C:/drop/_manifest"},
		{name: "darwin converts mixed separators", input: `a\b/c\\d`, goos: "darwin", expected: "a/b/c//d"},
		{name: "linux leaves forward slashes", input: "/tmp/drop", goos: "linux", expected: "/tmp/drop"},
		{name: "windows untouched", input: `C:\drop\_manifest`, goos: sanitizer.GOOSWindows, expected: `C:\drop\_manifest`},
		{name: "empty", input: "", goos: "linux", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.NormalizeSeparators(tt.input, tt.goos))
		})
	}
}

func TestJoinPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("drop", "_manifest"), sanitizer.JoinPath("drop", "_manifest"))
}
