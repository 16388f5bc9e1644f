package zero

// Value returns the zero value of a given type.
func Value[T any]() T {
	var t T
	return t
}

// Take returns the value p points to and leaves the zero value in its place,
// so the caller holds the only live copy.
func Take[T any](p *T) T {
	v := *p
	*p = Value[T]()
	return v
}
