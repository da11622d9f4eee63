package sanitizer

import (
	"path/filepath"
	"strings"
)

// GOOSWindows is the runtime.GOOS value of Windows targets.
const GOOSWindows = "windows"

// ForwardSlashes replaces every backslash in p with a forward slash.
func ForwardSlashes(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// NormalizeSeparators converts backslashes to forward slashes on every target
// except Windows, where paths are returned unchanged.
func NormalizeSeparators(p string, goos string) string {
	if goos == GOOSWindows {
		return p
	}
	return ForwardSlashes(p)
}

// JoinPath joins two path segments with the host separator. It performs no
// existence checks.
func JoinPath(a, b string) string {
	return filepath.Join(a, b)
}
