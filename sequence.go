package seqkit

// Sequence is the read-only random-access capability: a linear collection
// with an exact length and positional reads.
//
// Len must run in constant time and stay stable between calls unless a
// mutating operation intervenes. Get treats any index outside [0, Len())
// as an absence, never a fault.
type Sequence[T any] interface {
	// Len returns the number of elements.
	Len() int
	// Get returns the element at index, or the zero value and false when
	// index is out of range.
	Get(index int) (T, bool)
}

// MutSequence is the read-write refinement of Sequence. Writes require
// exclusive access to the underlying storage for their duration.
type MutSequence[T any] interface {
	Sequence[T]
	// Set stores value at index and reports whether index was in range.
	Set(index int, value T) bool
}

// Iterator is the sequential-only capability: a consuming front-to-back
// cursor. Elements yielded by Next cannot be revisited.
type Iterator[T any] interface {
	// Next returns the next element, or the zero value and false once the
	// iterator is exhausted.
	Next() (T, bool)
	// Remaining returns the exact number of elements left to yield.
	Remaining() int
}

// First returns the first element of s, or false when s is empty.
func First[T any](s Sequence[T]) (T, bool) {
	return s.Get(0)
}

// Last returns the last element of s, or false when s is empty.
func Last[T any](s Sequence[T]) (T, bool) {
	return s.Get(s.Len() - 1)
}

// IsEmpty reports whether s has no elements.
func IsEmpty[T any](s Sequence[T]) bool {
	return s.Len() == 0
}

// SetFirst stores value at position 0 and reports whether s is non-empty.
func SetFirst[T any](s MutSequence[T], value T) bool {
	return s.Set(0, value)
}

// SetLast stores value at the last position and reports whether s is
// non-empty.
func SetLast[T any](s MutSequence[T], value T) bool {
	return s.Set(s.Len()-1, value)
}
