package utils

func IndexOf[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return IndexOf(slice, item) >= 0
}

// Filter returns the items that satisfy keep, in order.
func Filter[T any](slice []T, keep func(T) bool) []T {
	kept := make([]T, 0, len(slice))
	for _, v := range slice {
		if keep(v) {
			kept = append(kept, v)
		}
	}
	return kept
}
