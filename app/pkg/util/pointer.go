package util

// GetOrDefault dereferences ptr, falling back to defaultValue when nil.
func GetOrDefault[T any](ptr *T, defaultValue T) T {
	if ptr == nil {
		return defaultValue
	}
	return *ptr
}
