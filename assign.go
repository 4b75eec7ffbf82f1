package seqkit

// Assign copies src into dst elementwise. The lengths must match
// exactly; on ErrLengthMismatch dst is left untouched.
func Assign[T any](dst MutSequence[T], src Sequence[T]) error {
	if dst.Len() != src.Len() {
		return ErrLengthMismatch
	}
	it := Iter(src)
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return nil
		}
		dst.Set(i, v)
	}
}

// Fill stores value at every position of dst.
func Fill[T any](dst MutSequence[T], value T) {
	for i := 0; i < dst.Len(); i++ {
		dst.Set(i, value)
	}
}
