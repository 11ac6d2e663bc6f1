package patch

// Coalesce returns *ptr when the field was supplied, otherwise the current value.
func Coalesce[T any](ptr *T, current T) T {
	if ptr != nil {
		return *ptr
	}
	return current
}
