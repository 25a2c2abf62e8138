package helpers

// Ptr returns a pointer to the provided value. Handy for optional JSON
// fields that distinguish "unset" from the zero value.
func Ptr[T any](val T) *T {
	return &val
}
