package manifest

import (
	"fmt"
	"strings"
)

// Conformance is an additional compliance profile layered atop a manifest format.
type Conformance string

const (
	ConformanceNone    Conformance = "None"
	ConformanceNTIAMin Conformance = "NTIAMin"
)

// Requirement lists the manifest formats a conformance level can be combined with.
// Formats match on name and major version. A nil Formats slice means the level
// places no requirement on the format.
type Requirement struct {
	Formats []Info
}

// Satisfied reports whether at least one of infos meets the requirement.
func (r Requirement) Satisfied(infos []Info) bool {
	if r.Formats == nil {
		return true
	}
	for _, info := range infos {
		for _, f := range r.Formats {
			if strings.EqualFold(f.Name, info.Name) && f.MajorVersion() == info.MajorVersion() {
				return true
			}
		}
	}
	return false
}

// CompatibilityTable maps each conformance level to the formats it accepts.
type CompatibilityTable map[Conformance]Requirement

// DefaultCompatibility is the compatibility table used by the sanitizer.
// The NTIA minimum elements profile is only expressed by SPDX 3.x.
var DefaultCompatibility = CompatibilityTable{
	ConformanceNone:    {},
	ConformanceNTIAMin: {Formats: []Info{SPDX30}},
}

// Check verifies that c can be combined with at least one of infos.
func (t CompatibilityTable) Check(c Conformance, infos []Info) error {
	req, ok := t[c]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownConformance, c)
	}
	if req.Satisfied(infos) {
		return nil
	}
	return fmt.Errorf("%w: conformance %s with manifest info %s is not a supported combination, supported manifest info: %s",
		ErrUnsupportedCombination, c, joinInfos(infos), joinInfos(req.Formats))
}

// ParseConformance parses a conformance name case-insensitively.
// An empty string parses as ConformanceNone.
func ParseConformance(s string) (Conformance, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ConformanceNone, nil
	}
	for c := range DefaultCompatibility {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return ConformanceNone, fmt.Errorf("%w: %q", ErrUnknownConformance, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Conformance) UnmarshalText(text []byte) error {
	parsed, err := ParseConformance(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func joinInfos(infos []Info) string {
	if len(infos) == 0 {
		return "[]"
	}
	parts := make([]string, len(infos))
	for i, info := range infos {
		parts[i] = info.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
