package patch

// Changed reports whether ptr is set and differs from current.
func Changed[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}
