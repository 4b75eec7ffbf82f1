package seqkit

// Slice returns a view of s covering positions [start, end). It fails
// with ErrInvalidRange unless 0 <= start <= end <= s.Len(); bounds are
// never silently clamped.
func Slice[T any](s Sequence[T], start, end int) (Sequence[T], error) {
	if start < 0 || start > end || end > s.Len() {
		return nil, ErrInvalidRange
	}
	return sliceView[T]{src: s, start: start, n: end - start}, nil
}

type sliceView[T any] struct {
	src   Sequence[T]
	start int
	n     int
}

func (v sliceView[T]) Len() int {
	return v.n
}

func (v sliceView[T]) Get(index int) (T, bool) {
	if index < 0 || index >= v.n {
		var zero T
		return zero, false
	}
	return v.src.Get(v.start + index)
}

// SliceMut is Slice over a mutable source; writes land at the offset
// position. Same bounds contract as Slice.
func SliceMut[T any](s MutSequence[T], start, end int) (MutSequence[T], error) {
	if start < 0 || start > end || end > s.Len() {
		return nil, ErrInvalidRange
	}
	return mutSliceView[T]{
		sliceView: sliceView[T]{src: s, start: start, n: end - start},
		mut:       s,
	}, nil
}

type mutSliceView[T any] struct {
	sliceView[T]
	mut MutSequence[T]
}

func (v mutSliceView[T]) Set(index int, value T) bool {
	if index < 0 || index >= v.n {
		return false
	}
	return v.mut.Set(v.start+index, value)
}
