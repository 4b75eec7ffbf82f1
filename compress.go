package seqkit

// Compress filters s by a boolean mask of the same length: element i of
// the source is kept when mask[i] is true. Fails with ErrLengthMismatch
// when the lengths differ.
//
// The view holds no index table, so Get walks the mask and costs
// O(s.Len()). When elements are accessed repeatedly, precompute an index
// sequence and use Select instead.
func Compress[T any](s Sequence[T], mask Sequence[bool]) (Sequence[T], error) {
	if mask.Len() != s.Len() {
		return nil, ErrLengthMismatch
	}
	kept := 0
	it := Iter(mask)
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		if m {
			kept++
		}
	}
	return compressSeq[T]{src: s, mask: mask, kept: kept}, nil
}

type compressSeq[T any] struct {
	src  Sequence[T]
	mask Sequence[bool]
	kept int
}

func (c compressSeq[T]) Len() int {
	return c.kept
}

func (c compressSeq[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= c.kept {
		return zero, false
	}
	seen := 0
	it := Iter(c.mask)
	for i := 0; ; i++ {
		m, ok := it.Next()
		if !ok {
			return zero, false
		}
		if !m {
			continue
		}
		if seen == index {
			return c.src.Get(i)
		}
		seen++
	}
}
