package internal

// ContextValue returns the value stored under key by c.Set, or the zero
// value of T when the key is missing or holds another type.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}
