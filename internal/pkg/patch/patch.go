package patch

// Coalesce returns the value pointed to by ptr if it is not nil, otherwise fallback.
// Used for PATCH endpoints where absent fields keep their stored value.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceNonBlank is Coalesce for strings where an explicit blank value is
// treated the same as an absent one.
func CoalesceNonBlank(ptr *string, fallback string) string {
	if ptr != nil && *ptr != "" {
		return *ptr
	}
	return fallback
}
