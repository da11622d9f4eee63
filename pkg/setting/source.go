package setting

import (
	"fmt"
	"strings"
)

// Source identifies the configuration layer that supplied a value.
// Higher values take precedence over lower ones.
type Source int

const (
	Default Source = iota
	ConfigFile
	CommandLine
)

var sourceNames = map[Source]string{
	Default:     "default",
	ConfigFile:  "config_file",
	CommandLine: "command_line",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("source(%d)", int(s))
}

// Outranks reports whether s strictly takes precedence over other.
func (s Source) Outranks(other Source) bool {
	return s > other
}

// IsDefault reports whether the value came from compiled-in or environment defaults.
func (s Source) IsDefault() bool {
	return s == Default
}

// ParseSource parses the names produced by Source.String.
func ParseSource(name string) (Source, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for src, n := range sourceNames {
		if n == normalized {
			return src, nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Source) UnmarshalText(text []byte) error {
	src, err := ParseSource(string(text))
	if err != nil {
		return err
	}
	*s = src
	return nil
}
