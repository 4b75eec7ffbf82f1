package seqkit

// Map returns a lazy view of s with f applied to every element. f runs on
// each access, so repeated reads of one position call it again.
//
// The result is read-only regardless of what s supports: a transformed
// view offers no write-back.
func Map[T, U any](s Sequence[T], f func(T) U) Sequence[U] {
	return mapSeq[T, U]{src: s, f: f}
}

type mapSeq[T, U any] struct {
	src Sequence[T]
	f   func(T) U
}

func (m mapSeq[T, U]) Len() int {
	return m.src.Len()
}

func (m mapSeq[T, U]) Get(index int) (U, bool) {
	v, ok := m.src.Get(index)
	if !ok {
		var zero U
		return zero, false
	}
	return m.f(v), true
}
