package seqkit

// Select returns a view of s rearranged by indices: position i reads
// s at indices[i]. Indices may repeat or reorder freely. Construction
// fails with ErrIndexOutOfRange if any index falls outside s, so the
// view never signals absence for a position inside its own bounds.
func Select[T any](s Sequence[T], indices Sequence[int]) (Sequence[T], error) {
	if err := checkIndices(indices, s.Len()); err != nil {
		return nil, err
	}
	return selectSeq[T]{src: s, indices: indices}, nil
}

type selectSeq[T any] struct {
	src     Sequence[T]
	indices Sequence[int]
}

func (s selectSeq[T]) Len() int {
	return s.indices.Len()
}

func (s selectSeq[T]) Get(index int) (T, bool) {
	i, ok := s.indices.Get(index)
	if !ok {
		var zero T
		return zero, false
	}
	return s.src.Get(i)
}

// SelectMut is Select over a mutable source; writes land at the selected
// position. When indices repeat, later writes to aliases simply
// overwrite earlier ones.
func SelectMut[T any](s MutSequence[T], indices Sequence[int]) (MutSequence[T], error) {
	if err := checkIndices(indices, s.Len()); err != nil {
		return nil, err
	}
	return mutSelectSeq[T]{
		selectSeq: selectSeq[T]{src: s, indices: indices},
		mut:       s,
	}, nil
}

type mutSelectSeq[T any] struct {
	selectSeq[T]
	mut MutSequence[T]
}

func (s mutSelectSeq[T]) Set(index int, value T) bool {
	i, ok := s.indices.Get(index)
	if !ok {
		return false
	}
	return s.mut.Set(i, value)
}

func checkIndices(indices Sequence[int], n int) error {
	it := Iter(indices)
	for i, ok := it.Next(); ok; i, ok = it.Next() {
		if i < 0 || i >= n {
			return ErrIndexOutOfRange
		}
	}
	return nil
}
