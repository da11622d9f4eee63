package sanitizer

// Numeric represents numeric types that support ordering.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ClampMax ensures a numeric value is not greater than the specified maximum.
func ClampMax[T Numeric](value T, max T) T {
	if value > max {
		return max
	}
	return value
}

// PositiveOrDefault returns fallback for values <= 0 and caps the rest at max.
// A non-positive value is not raised to a lower bound.
func PositiveOrDefault[T Numeric](value T, fallback T, max T) T {
	if value <= 0 {
		return fallback
	}
	return ClampMax(value, max)
}
