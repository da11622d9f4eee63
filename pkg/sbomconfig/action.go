package sbomconfig

import (
	"fmt"
	"strings"
)

// Action is the operation the tool was asked to perform.
type Action string

const (
	ActionGenerate       Action = "Generate"
	ActionValidate       Action = "Validate"
	ActionValidateFormat Action = "ValidateFormat"
	ActionRedact         Action = "Redact"
	ActionConsolidate    Action = "Consolidate"
)

// Actions lists every supported action.
var Actions = []Action{
	ActionGenerate,
	ActionValidate,
	ActionValidateFormat,
	ActionRedact,
	ActionConsolidate,
}

func (a Action) String() string {
	return string(a)
}

// Valid reports whether a is one of Actions.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// ParseAction parses an action name case-insensitively. Dashes are ignored so
// "validate-format" parses as ActionValidateFormat.
func ParseAction(name string) (Action, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(name), "-", "")
	for _, a := range Actions {
		if strings.EqualFold(string(a), normalized) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Action) needsManifestInfo() bool {
	return a == ActionGenerate || a == ActionValidate
}
