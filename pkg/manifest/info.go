package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Info identifies an SBOM schema and version.
type Info struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
}

var (
	SPDX22 = Info{Name: "SPDX", Version: "2.2"}
	SPDX30 = Info{Name: "SPDX", Version: "3.0"}
)

// String renders the descriptor as "<name>:<version>".
func (i Info) String() string {
	return i.Name + ":" + i.Version
}

// MajorVersion returns the part of Version before the first dot.
func (i Info) MajorVersion() string {
	major, _, _ := strings.Cut(i.Version, ".")
	return major
}

// ParseInfo parses "<name>:<version>", e.g. "SPDX:2.2".
func ParseInfo(s string) (Info, error) {
	name, version, ok := strings.Cut(strings.TrimSpace(s), ":")
	name = strings.TrimSpace(name)
	version = strings.TrimSpace(version)
	if !ok || name == "" || version == "" {
		return Info{}, fmt.Errorf("%w: %q, expected <name>:<version>", ErrInvalidInfo, s)
	}
	return Info{Name: strings.ToUpper(name), Version: version}, nil
}

// ParseInfoList parses a list of descriptors, failing on the first bad entry.
func ParseInfoList(values []string) ([]Info, error) {
	out := make([]Info, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		info, err := ParseInfo(v)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

// MarshalText implements encoding.TextMarshaler.
func (i Info) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Info) UnmarshalText(text []byte) error {
	info, err := ParseInfo(string(text))
	if err != nil {
		return err
	}
	*i = info
	return nil
}

// UnmarshalYAML accepts either the "<name>:<version>" scalar form or a
// mapping with name and version keys.
func (i *Info) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return i.UnmarshalText([]byte(node.Value))
	}

	type plain Info
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Version) == "" {
		return fmt.Errorf("%w: name and version are required", ErrInvalidInfo)
	}
	*i = Info{Name: strings.ToUpper(strings.TrimSpace(p.Name)), Version: strings.TrimSpace(p.Version)}
	return nil
}
