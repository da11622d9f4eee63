package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the process run identifier under the key "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Action records the requested tool action under the key "action".
func Action(name string) slog.Attr {
	return slog.String("action", name)
}

// Field records a configuration field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Source records the provenance of a value under the key "source".
func Source(src fmt.Stringer) slog.Attr {
	return slog.String("source", src.String())
}

// Value records an arbitrary value under the key "value".
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
