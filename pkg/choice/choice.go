package choice

// Ternary operator
func Ternary[T any](condition bool, isTrue, isFalse T) T {
	if condition {
		return isTrue
	}

	return isFalse
}

// Coalesce returns the first non-zero value, or the zero value if all are.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}

	return zero
}
