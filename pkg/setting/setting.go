package setting

// Setting is a configuration value paired with the layer that supplied it.
type Setting[T any] struct {
	Value  T      `yaml:"value" json:"value"`
	Source Source `yaml:"source" json:"source"`
}

// New returns a pointer to a setting, the form used by configuration structs.
func New[T any](value T, source Source) *Setting[T] {
	return &Setting[T]{Value: value, Source: source}
}

// IsSet reports whether s holds a value.
func (s *Setting[T]) IsSet() bool {
	return s != nil
}

// SourceOr returns the source of s, or fallback when s is unset.
func (s *Setting[T]) SourceOr(fallback Source) Source {
	if s == nil {
		return fallback
	}
	return s.Source
}

// ValueOr returns the value of s, or fallback when s is unset.
func (s *Setting[T]) ValueOr(fallback T) T {
	if s == nil {
		return fallback
	}
	return s.Value
}

// CanReplace reports whether a value coming from incoming may overwrite current.
// Unset values can always be replaced. A set value can only be replaced by a
// source of equal or higher precedence.
func CanReplace[T any](current *Setting[T], incoming Source) bool {
	if current == nil {
		return true
	}
	return !current.Source.Outranks(incoming)
}

// Merge returns the candidate with the highest precedence. Nil candidates are
// skipped. When two candidates share a source the later one wins.
func Merge[T any](candidates ...*Setting[T]) *Setting[T] {
	var winner *Setting[T]
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if CanReplace(winner, c.Source) {
			winner = c
		}
	}
	return winner
}
